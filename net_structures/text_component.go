package net_structures

import "encoding/json"

// maxChatLength bounds the decoded JSON string length (§6.1 chat fields use this
// as their string size cap rather than the default 32767).
const maxChatLength = 262144

// TextComponent represents a Minecraft text component.
//
// Protocol 764 predates the NBT chat format (1.20.3+); components travel as a
// JSON string prefixed by its VarInt length, same as any other wire String.
//
// A text component can be:
//   - A plain string (text content only)
//   - A compound with content, style, and children
type TextComponent struct {
	// content types (only one should be set)
	Text       string `json:"text,omitempty"`
	Translate  string `json:"translate,omitempty"`
	Keybind    string `json:"keybind,omitempty"`
	Score      *Score `json:"score,omitempty"`
	Selector   string `json:"selector,omitempty"`
	NBT        string `json:"nbt,omitempty"`
	NBTBlock   string `json:"block,omitempty"`
	NBTEntity  string `json:"entity,omitempty"`
	NBTStorage string `json:"storage,omitempty"`
	Interpret  *bool  `json:"interpret,omitempty"`

	// translation arguments (for translate content type)
	With []TextComponent `json:"with,omitempty"`

	// style
	Color         string `json:"color,omitempty"`
	Bold          *bool  `json:"bold,omitempty"`
	Italic        *bool  `json:"italic,omitempty"`
	Underlined    *bool  `json:"underlined,omitempty"`
	Strikethrough *bool  `json:"strikethrough,omitempty"`
	Obfuscated    *bool  `json:"obfuscated,omitempty"`
	Font          string `json:"font,omitempty"`
	Insertion     string `json:"insertion,omitempty"`

	// click/hover events
	ClickEvent *ClickEvent `json:"clickEvent,omitempty"`
	HoverEvent *HoverEvent `json:"hoverEvent,omitempty"`

	// children
	Extra []TextComponent `json:"extra,omitempty"`
}

// Score represents score component content.
type Score struct {
	Name      string `json:"name"`
	Objective string `json:"objective"`
}

// ClickEvent represents a click event for text components.
// Each action type uses a different field; Action determines which is relevant.
type ClickEvent struct {
	Action  string `json:"action"`
	URL     string `json:"url,omitempty"`     // open_url
	Path    string `json:"path,omitempty"`    // open_file
	Command string `json:"command,omitempty"` // run_command, suggest_command
	Page    int32  `json:"page,omitempty"`    // change_page
	Value   string `json:"value,omitempty"`   // copy_to_clipboard
}

// HoverEvent represents a hover event for text components.
// Each action type uses different fields; Action determines which are relevant.
type HoverEvent struct {
	Action string `json:"action"`
	// show_text
	Value *TextComponent `json:"value,omitempty"`
	// show_entity and show_item
	ID string `json:"id,omitempty"`
	// show_entity
	EntityUUID string         `json:"uuid,omitempty"`
	Name       *TextComponent `json:"name,omitempty"`
	// show_item
	Count int32 `json:"count,omitempty"`
}

// NewTextComponent creates a simple text component with the given text.
func NewTextComponent(text string) TextComponent {
	return TextComponent{Text: text}
}

// NewTranslateComponent creates a translatable text component.
func NewTranslateComponent(key string, args ...TextComponent) TextComponent {
	return TextComponent{Translate: key, With: args}
}

// isSimpleText returns true if this component contains only plain text
// with no styling, events, or children.
func (tc *TextComponent) isSimpleText() bool {
	return tc.Text != "" &&
		tc.Translate == "" &&
		tc.Keybind == "" &&
		tc.Score == nil &&
		tc.Selector == "" &&
		tc.NBT == "" &&
		tc.NBTBlock == "" &&
		tc.NBTEntity == "" &&
		tc.NBTStorage == "" &&
		tc.Interpret == nil &&
		len(tc.With) == 0 &&
		tc.Color == "" &&
		tc.Bold == nil &&
		tc.Italic == nil &&
		tc.Underlined == nil &&
		tc.Strikethrough == nil &&
		tc.Obfuscated == nil &&
		tc.Font == "" &&
		tc.Insertion == "" &&
		tc.ClickEvent == nil &&
		tc.HoverEvent == nil &&
		len(tc.Extra) == 0
}

// MarshalJSON encodes a simple text-only component as a bare JSON string
// instead of a single-key object, matching vanilla's compact chat encoding.
func (tc TextComponent) MarshalJSON() ([]byte, error) {
	if tc.isSimpleText() {
		return json.Marshal(tc.Text)
	}
	type plain TextComponent
	return json.Marshal(plain(tc))
}

// UnmarshalJSON handles both plain JSON strings (e.g. `"hello"`) and
// JSON objects (e.g. `{"text":"hello","color":"red"}`).
func (tc *TextComponent) UnmarshalJSON(data []byte) error {
	var s string
	if json.Unmarshal(data, &s) == nil {
		*tc = TextComponent{Text: s}
		return nil
	}
	// avoid infinite recursion through json.Unmarshaler
	type plain TextComponent
	return json.Unmarshal(data, (*plain)(tc))
}

// Encode writes the text component as a length-prefixed JSON string.
func (tc *TextComponent) Encode(buf *PacketBuffer) error {
	data, err := json.Marshal(tc)
	if err != nil {
		return err
	}
	return buf.WriteString(String(data))
}

// Decode reads a text component from a length-prefixed JSON string.
func (tc *TextComponent) Decode(buf *PacketBuffer) error {
	s, err := buf.ReadString(maxChatLength)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(s), tc)
}

// ReadTextComponent reads a text component from the buffer.
func (pb *PacketBuffer) ReadTextComponent() (TextComponent, error) {
	var tc TextComponent
	err := tc.Decode(pb)
	return tc, err
}

// WriteTextComponent writes a text component to the buffer.
func (pb *PacketBuffer) WriteTextComponent(tc TextComponent) error {
	return tc.Encode(pb)
}
