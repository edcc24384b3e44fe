package prompt

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	answer string
	err    error
}

func (f *fakePrompter) Prompt(string) (string, error) { return f.answer, f.err }
func (*fakePrompter) Close() error                    { return nil }

func TestConfirmWithPrompter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{name: "yes", answer: "y", want: true},
		{name: "yes word", answer: "yes", want: true},
		{name: "uppercase yes", answer: "Y", want: true},
		{name: "no", answer: "n", want: false},
		{name: "empty defaults to no", answer: "", want: false},
		{name: "garbage defaults to no", answer: "maybe", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ConfirmWithPrompter(&fakePrompter{answer: tt.answer}, "Apply bump?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmWithPrompterEOFCancels(t *testing.T) {
	t.Parallel()

	_, err := ConfirmWithPrompter(&fakePrompter{err: io.EOF}, "Apply bump?")
	require.ErrorIs(t, err, ErrCancelled)
}

func TestConfirmWithPrompterOtherError(t *testing.T) {
	t.Parallel()

	_, err := ConfirmWithPrompter(&fakePrompter{err: errors.New("tty gone")}, "Apply bump?")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCancelled)
}
