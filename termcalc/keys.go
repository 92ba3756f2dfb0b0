package main

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the calculator's key bindings for the help view.
type keyMap struct {
	Digits   key.Binding
	Add      key.Binding
	Sub      key.Binding
	Mul      key.Binding
	Div      key.Binding
	Sqrt     key.Binding
	Percent  key.Binding
	Sign     key.Binding
	Equals   key.Binding
	Clear    key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
	tokenFor map[string]string
}

func newKeyMap() keyMap {
	km := keyMap{
		Digits:  key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."), key.WithHelp("0-9 .", "digits")),
		Add:     key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "add")),
		Sub:     key.NewBinding(key.WithKeys("-", "−"), key.WithHelp("-", "subtract")),
		Mul:     key.NewBinding(key.WithKeys("*", "x", "×"), key.WithHelp("*", "multiply")),
		Div:     key.NewBinding(key.WithKeys("/", "÷"), key.WithHelp("/", "divide")),
		Sqrt:    key.NewBinding(key.WithKeys("s", "√"), key.WithHelp("s", "square root")),
		Percent: key.NewBinding(key.WithKeys("%"), key.WithHelp("%", "percent")),
		Sign:    key.NewBinding(key.WithKeys("n", "±"), key.WithHelp("n", "negate")),
		Equals:  key.NewBinding(key.WithKeys("=", "enter"), key.WithHelp("enter", "equals")),
		Clear:   key.NewBinding(key.WithKeys("c", "C", "esc"), key.WithHelp("esc", "clear")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	km.tokenFor = make(map[string]string)
	bind := func(b key.Binding, token string) {
		for _, k := range b.Keys() {
			km.tokenFor[k] = token
		}
	}
	for _, k := range km.Digits.Keys() {
		km.tokenFor[k] = k
	}
	bind(km.Add, "+")
	bind(km.Sub, "-")
	bind(km.Mul, "×")
	bind(km.Div, "÷")
	bind(km.Sqrt, "√")
	bind(km.Percent, "%")
	bind(km.Sign, "±")
	bind(km.Equals, "=")
	bind(km.Clear, "C")
	return km
}

// token translates a key press into a calculator token.
func (km keyMap) token(keyName string) (string, bool) {
	tok, ok := km.tokenFor[keyName]
	return tok, ok
}

// ShortHelp implements help.KeyMap.
func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Equals, km.Clear, km.Help, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Digits, km.Add, km.Sub, km.Mul, km.Div},
		{km.Sqrt, km.Percent, km.Sign},
		{km.Equals, km.Clear, km.Copy, km.Help, km.Quit},
	}
}
