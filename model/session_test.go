package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const renterBlob = `{
	"access_token": "tok-123",
	"token_type": "bearer",
	"data": {"UserInfo": {"id": 5, "full_name": "Jane Doe", "role": "renter"}}
}`

const hostBlob = `{
	"access_token": "tok-456",
	"token_type": "bearer",
	"data": {"UserInfo": {"id": 9, "full_name": "Sam Host", "role": "host"}}
}`

func TestResolveAccess(t *testing.T) {
	testCases := []struct {
		name string
		raw  []byte
		kind AccessKind
		view string
	}{
		{name: "absent", raw: nil, kind: AccessNone, view: "login"},
		{name: "empty", raw: []byte(""), kind: AccessNone, view: "login"},
		{name: "garbage", raw: []byte("{not json"), kind: AccessNone, view: "login"},
		{name: "missing token", raw: []byte(`{"data":{"UserInfo":{"role":"renter"}}}`), kind: AccessNone, view: "login"},
		{name: "unknown role", raw: []byte(`{"access_token":"t","data":{"UserInfo":{"role":"admin"}}}`), kind: AccessNone, view: "login"},
		{name: "renter", raw: []byte(renterBlob), kind: AccessRenter, view: "renter-overview"},
		{name: "host", raw: []byte(hostBlob), kind: AccessHost, view: "host-overview"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			access := ResolveAccess(tc.raw)
			assert.Equal(t, tc.kind, access.Kind)
			assert.Equal(t, tc.view, access.DefaultView())
		})
	}
}

func TestResolveAccessNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		ResolveAccess([]byte(`"just a string"`))
		ResolveAccess([]byte(`[1,2,3]`))
		ResolveAccess([]byte{0xff, 0xfe})
	})
}

func TestAccessToken(t *testing.T) {
	assert.Equal(t, "", Access{Kind: AccessNone}.Token())

	access := ResolveAccess([]byte(renterBlob))
	assert.Equal(t, "tok-123", access.Token())
	assert.Equal(t, "Jane Doe", access.Session.User().FullName)
}
