package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	t.Run("Success valid path", func(t *testing.T) {
		ref, err := ParsePath("users/u1")
		require.NoError(t, err)
		assert.Equal(t, Ref{Collection: "users", ID: "u1"}, ref)
		assert.Equal(t, "users/u1", ref.Path())
	})

	t.Run("Error invalid paths", func(t *testing.T) {
		for _, path := range []string{"", "users", "users/", "/u1", "users/u1/extra"} {
			_, err := ParsePath(path)
			assert.Error(t, err, "path %q", path)
		}
	})
}

func TestClone(t *testing.T) {
	original := Fields{
		"author": "users/u1",
		"title":  "hello",
		"comments": []any{
			map[string]any{"author": "users/u2", "text": "hi"},
		},
	}

	copied := Clone(original)
	require.Equal(t, original, copied)

	// تغییر کپی نباید روی نسخه اصلی اثر بگذارد
	copied["author"] = Ref{Collection: "users", ID: "u1"}
	copied["comments"].([]any)[0].(map[string]any)["author"] = Ref{Collection: "users", ID: "u2"}

	assert.Equal(t, "users/u1", original["author"])
	assert.Equal(t, "users/u2", original["comments"].([]any)[0].(map[string]any)["author"])
}

func TestCloneNil(t *testing.T) {
	assert.Nil(t, Clone(nil))
}
