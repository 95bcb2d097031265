package buffer

import "testing"

func TestLexemeAppend(t *testing.T) {
	tests := []struct {
		name string
		run  func(l *Lexeme)
		want string
	}{
		{
			name: "append char",
			run:  func(l *Lexeme) { l.AppendChar('x') },
			want: "x",
		},
		{
			name: "append cstring",
			run:  func(l *Lexeme) { l.AppendCString("begin") },
			want: "begin",
		},
		{
			name: "append int positive",
			run:  func(l *Lexeme) { l.AppendCString("n="); l.AppendInt(42) },
			want: "n=42",
		},
		{
			name: "append int negative",
			run:  func(l *Lexeme) { l.AppendInt(-7) },
			want: "-7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			tt.run(l)
			if got := l.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLexemeOverwriteAndReset(t *testing.T) {
	l := New()
	l.AppendCString("hello")
	l.Overwrite([]byte("hi"))
	if got := l.String(); got != "hi" {
		t.Fatalf("after Overwrite: got %q, want %q", got, "hi")
	}

	l.Reset()
	if l.Len() != 0 {
		t.Fatalf("after Reset: Len() = %d, want 0", l.Len())
	}
	l.AppendChar('a')
	if got := l.String(); got != "a" {
		t.Fatalf("after Reset+append: got %q, want %q", got, "a")
	}
}
