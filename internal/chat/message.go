package chat

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn. Immutable once appended; insertion
// order is display order.
type Message struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// QuickAction is a predefined utterance exposed as a clickable
// shortcut; running one is equivalent to typing its query.
type QuickAction struct {
	Label string `json:"label"`
	Query string `json:"query"`
}

// QuickActions is the fixed catalog a consumer UI renders as buttons.
var QuickActions = []QuickAction{
	{Label: "💼 Experience", Query: "Tell me about experience"},
	{Label: "🛠️ Skills", Query: "What are the skills?"},
	{Label: "🎓 Education", Query: "Tell me about education"},
	{Label: "🚀 Projects", Query: "Show me projects"},
	{Label: "📧 Contact", Query: "How to connect?"},
}

// QuickActionByLabel looks up a catalog entry.
func QuickActionByLabel(label string) (QuickAction, bool) {
	for _, qa := range QuickActions {
		if qa.Label == label {
			return qa, true
		}
	}
	return QuickAction{}, false
}
