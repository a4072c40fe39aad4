package openai

import "testing"

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-3.5-turbo"); err == nil {
		t.Fatalf("expected error for empty API key")
	}
	if _, err := NewClient("sk-test", ""); err == nil {
		t.Fatalf("expected error for empty model")
	}
	client, err := NewClient("sk-test", "gpt-3.5-turbo")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.model != "gpt-3.5-turbo" {
		t.Fatalf("model = %q", client.model)
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  {\"a\":1}  ", want: `{"a":1}`},
	}
	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Fatalf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
