package model

// Session is the login payload the backend returns. It is persisted per
// chat as an opaque JSON blob and parsed back on every dashboard mount.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Data        struct {
		UserInfo User `json:"UserInfo"`
	} `json:"data"`
}

func (s Session) IsValid() bool {
	return s.AccessToken != "" && s.Data.UserInfo.Role.Valid()
}

func (s Session) User() User {
	return s.Data.UserInfo
}

type AccessKind uint8

const (
	AccessNone AccessKind = iota
	AccessRenter
	AccessHost
)

// Access is the resolved authentication state of a chat: no session,
// a renter session or a host session.
type Access struct {
	Kind    AccessKind
	Session *Session
}

// ResolveAccess turns a persisted session blob into an Access value.
// Absent, unparsable and token-less blobs all resolve to AccessNone;
// it never fails.
func ResolveAccess(raw []byte) Access {
	if len(raw) == 0 {
		return Access{Kind: AccessNone}
	}
	session, err := ParseAndValidate[Session](string(raw))
	if err != nil {
		return Access{Kind: AccessNone}
	}
	switch session.User().Role {
	case RoleRenter:
		return Access{Kind: AccessRenter, Session: session}
	case RoleHost:
		return Access{Kind: AccessHost, Session: session}
	}
	return Access{Kind: AccessNone}
}

// DefaultView is the dashboard view a freshly resolved session lands on.
func (a Access) DefaultView() string {
	switch a.Kind {
	case AccessRenter:
		return "renter-overview"
	case AccessHost:
		return "host-overview"
	}
	return "login"
}

func (a Access) Token() string {
	if a.Session == nil {
		return ""
	}
	return a.Session.AccessToken
}
