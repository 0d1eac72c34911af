package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"C:\\Users\\x\\AppData\\Local\\Whiskerwood\\", "C:/Users/x/AppData/Local/Whiskerwood"},
		{"/home/x/whiskerwood/", "/home/x/whiskerwood"},
		{"/home/x//whiskerwood/./Saved/../Saved/mods", "/home/x/whiskerwood/Saved/mods"},
		{"C:\\", "C:/"},
		{"\\\\server\\share\\Whiskerwood", "//server/share/Whiskerwood"},
		{"relative/dir/", "relative/dir"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestParentAndJoin(t *testing.T) {
	mods := "C:/Users/x/AppData/Local/Whiskerwood/Saved/mods"
	assert.Equal(t, "C:/Users/x/AppData/Local/Whiskerwood", Parent(Parent(mods)))
	assert.Equal(t, "", Parent(""))
	assert.Equal(t, "C:/a/b/c", Join("C:\\a", "b/", "c"))
}

func TestIsAbsolute(t *testing.T) {
	assert.True(t, IsAbsolute("/srv/whiskerwood"))
	assert.True(t, IsAbsolute("D:\\WW\\Project"))
	assert.True(t, IsAbsolute("D:/WW/Project"))
	assert.False(t, IsAbsolute("WW/Project"))
	assert.False(t, IsAbsolute("D:relative"))
}
