package strip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line    string
		want    Marker
		wantErr bool
	}{
		{line: "plain text\n", want: NoMarker},
		{line: "single @ sign\n", want: NoMarker},
		{line: "@@DEBUG\n", want: DebugMarker},
		{line: "  # @@DEBUG start\n", want: DebugMarker},
		{line: "@@END\n", want: EndMarker},
		{line: "@@END", want: EndMarker},
		{line: "@@FOO\n", wantErr: true},
		{line: "@@debug\n", wantErr: true},
		{line: "@@\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Classify(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedMarker)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "passthrough", Passthrough.String())
	assert.Equal(t, "suppress", Suppress.String())
	assert.Equal(t, "debug", DebugMarker.String())
}
