package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSProvider(t *testing.T) {
	t.Setenv("ENVINSPECT_PROVIDER_TEST", "value")

	v, ok := OSProvider{}.LookupEnv("ENVINSPECT_PROVIDER_TEST")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	_, ok = OSProvider{}.LookupEnv("ENVINSPECT_PROVIDER_TEST_UNSET_XYZ")
	assert.False(t, ok)
}

func TestMapProvider(t *testing.T) {
	p := MapProvider{"B": "2", "A": "1", "EMPTY": ""}

	v, ok := p.LookupEnv("A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	v, ok = p.LookupEnv("EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = p.LookupEnv("C")
	assert.False(t, ok)
}

func TestIsSet(t *testing.T) {
	p := MapProvider{"SET": "x", "EMPTY": ""}

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{name: "non-empty value", key: "SET", want: true},
		{name: "empty value counts as unset", key: "EMPTY", want: false},
		{name: "absent", key: "ABSENT", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSet(p, tt.key))
		})
	}
}
