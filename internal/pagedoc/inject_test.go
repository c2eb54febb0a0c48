package pagedoc

import "testing"

func TestInjectHead(t *testing.T) {
	t.Parallel()

	const tag = `<script src="http://h/js/a.js"></script>`

	tests := []struct {
		name   string
		html   string
		markup string
		want   string
	}{
		{
			name:   "empty markup is a no-op",
			html:   "<html><head></head></html>",
			markup: "",
			want:   "<html><head></head></html>",
		},
		{
			name:   "before closing head",
			html:   "<html><head><title>x</title></head><body></body></html>",
			markup: tag,
			want:   "<html><head><title>x</title>" + tag + "</head><body></body></html>",
		},
		{
			name:   "uppercase head",
			html:   "<HTML><HEAD></HEAD></HTML>",
			markup: tag,
			want:   "<HTML><HEAD>" + tag + "</HEAD></HTML>",
		},
		{
			name:   "after body with attributes",
			html:   `<body class="x"><p>hi</p></body>`,
			markup: tag,
			want:   `<body class="x">` + tag + `<p>hi</p></body>`,
		},
		{
			name:   "unclosed body tag prepends",
			html:   "<body",
			markup: tag,
			want:   tag + "<body",
		},
		{
			name:   "fragment prepends",
			html:   "<p>hi</p>",
			markup: tag,
			want:   tag + "<p>hi</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := InjectHead(tt.html, tt.markup); got != tt.want {
				t.Errorf("InjectHead() = %q, want %q", got, tt.want)
			}
		})
	}
}
