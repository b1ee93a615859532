// Package slack posts operational notifications to Slack webhooks.
// Notifications fire only in staging and production; development
// deployments stay quiet.
package slack

import (
	"encoding/json"
	"fmt"

	"github.com/alphaoracle/alphaoracle/utils"
	"github.com/alphaoracle/alphaoracle/utils/env"
	"github.com/alphaoracle/alphaoracle/utils/log"
	sl "github.com/ashwanthkumar/slack-go-webhook"
)

type channel struct {
	name    string
	user    string
	webhook string
}

type Message struct {
	target *channel
	body   interface{}
}

func (m *Message) SetBody(body interface{}) {
	m.body = body
}

func (m *Message) FormatBody() string {
	switch v := m.body.(type) {
	case string:
		return v
	default:
		buf, _ := json.MarshalIndent(v, "", "\t")
		return fmt.Sprintf("```%s```", string(buf))
	}
}

func (m *Message) Send() {
	if m.target == nil || m.target.webhook == "" {
		return
	}

	errs := sl.Send(
		m.target.webhook,
		"", sl.Payload{
			Text:     m.FormatBody(),
			Channel:  m.target.name,
			Username: m.target.user,
		})

	if len(errs) > 0 {
		log.Logger().Debug("slack send errors", "errors", errs)
	}
}

// Notify sends a message over Slack. The supplied body can be a
// string, sent in raw form, or an object marshalled to JSON.
func Notify(msg Message) {
	if utils.Stg() || utils.Prod() {
		msg.Send()
	}
}

func NewServerError() Message {
	return Message{
		target: &channel{
			webhook: env.GetVar("SLACK_ERRORS_WEBHOOK"),
			name:    "#oracle-server-errors",
			user:    "Alpha Oracle",
		},
	}
}

func NewIngestFailure() Message {
	return Message{
		target: &channel{
			webhook: env.GetVar("SLACK_INGEST_WEBHOOK"),
			name:    "#oracle-ingest-failures",
			user:    "Alpha Oracle Ingest",
		},
	}
}
