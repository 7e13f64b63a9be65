package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/sashabaranov/go-openai"

	"github.com/oybek/lalahouse/model"
)

// handleDescribe drafts a listing description from the host's notes:
// "/describe sunny 2br near the park". Optional; needs an OpenAI token.
func (lp *LongPoll) handleDescribe(b *gotgbot.Bot, ctx *ext.Context) error {
	chat := ctx.EffectiveMessage.Chat

	if lp.aiClient == nil {
		return lp.sendText(chat.Id, "Description drafting is not enabled on this bot.")
	}

	d := lp.mount(context.Background(), chat.Id)
	if d.access.Kind != model.AccessHost {
		return lp.sendText(chat.Id, TextHostsOnly)
	}

	notes := strings.TrimSpace(strings.TrimPrefix(ctx.EffectiveMessage.Text, "/describe"))
	if notes == "" {
		return lp.sendText(chat.Id, "Usage: /describe a few words about the house")
	}

	resp, err := lp.aiClient.CreateChatCompletion(context.TODO(), openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    "system",
				Content: "You write short, warm rental listing descriptions. Two or three sentences, no emojis.",
			},
			{
				Role:    "user",
				Content: notes,
			},
		},
		MaxTokens: 200,
	})
	if err != nil {
		log.Printf("[ChatId=%d] describe: %v", chat.Id, err)
		return lp.sendText(chat.Id, "Could not draft a description, try again later.")
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("empty answer from OpenAI")
	}

	return lp.sendText(chat.Id, resp.Choices[0].Message.Content)
}
