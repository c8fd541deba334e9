package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyLine_Sentinels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want LineKind
	}{
		{name: "ok with newline", text: "ok\n", want: LineOK},
		{name: "ok bare", text: "ok", want: LineOK},
		{name: "ok padded", text: "  ok  \n", want: LineOK},
		{name: "err with newline", text: "err\n", want: LineErr},
		{name: "err windows line ending", text: "err\r\n", want: LineErr},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			line := ClassifyLine(tc.text)
			require.Equal(t, tc.want, line.Kind)
			require.Equal(t, tc.text, line.Text)
		})
	}
}

func TestClassifyLine_PassThrough(t *testing.T) {
	tests := []string{
		"compiling foo\n",
		"okay\n",
		"error: something broke\n",
		"  ok with trailing words\n",
		"\n",
	}

	for _, text := range tests {
		line := ClassifyLine(text)
		require.Equal(t, LinePassThrough, line.Kind)
		// Pass-through text must survive untouched, terminator included.
		require.Equal(t, text, line.Text)
	}
}
