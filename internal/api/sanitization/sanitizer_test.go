package sanitization

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"Tom & Jerry", "Tom &amp; Jerry"},
		{"line one\nline two", "line one<br>line two"},
		{"windows\r\nbreak", "windows<br>break"},
		{`"quoted"`, "&#34;quoted&#34;"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := EscapeHTML(tt.in); got != tt.want {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ann", "Ann"},
		{"Ann\r\nBcc: evil@example.com", "Ann Bcc: evil@example.com"},
		{"Ann  Lee", "Ann  Lee"},
		{"tab\tkept", "tab\tkept"},
		{"one\n\n\ntwo", "one two"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeHeader(tt.in); got != tt.want {
				t.Errorf("SanitizeHeader(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
