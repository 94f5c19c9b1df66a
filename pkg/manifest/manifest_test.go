package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mobilekit/fblogin/pkg/manifest"
)

func TestStatic(t *testing.T) {
	t.Parallel()

	m := manifest.NewStatic([]string{"fb1234"}, []string{"fbauth2"})

	assert.True(t, m.IsRegisteredScheme("fb1234"))
	assert.False(t, m.IsRegisteredScheme("fb9999"))
	assert.False(t, m.IsRegisteredScheme(""))

	assert.True(t, m.CanOpenScheme("fbauth2"))
	assert.False(t, m.CanOpenScheme("fb1234"))
}

func TestStaticCopiesInput(t *testing.T) {
	t.Parallel()

	registered := []string{"fb1234"}
	m := manifest.NewStatic(registered, nil)

	registered[0] = "mutated"
	assert.True(t, m.IsRegisteredScheme("fb1234"))
}
