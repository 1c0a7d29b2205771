package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		known []string
		want  []string
	}{
		{
			name:  "separate value",
			args:  []string{"-d", "luggage.db", "-x", "1"},
			known: []string{"-d"},
			want:  []string{"-d", "luggage.db"},
		},
		{
			name:  "equals form",
			args:  []string{"-config=alt.json", "-d", "a.db"},
			known: []string{"-c", "-config"},
			want:  []string{"-config=alt.json"},
		},
		{
			name:  "unknown flags dropped",
			args:  []string{"-x", "1", "--y=2", "positional"},
			known: []string{"-c"},
			want:  []string{},
		},
		{
			name:  "trailing flag without value",
			args:  []string{"-t"},
			known: []string{"-t"},
			want:  []string{"-t"},
		},
		{
			name:  "next dash token is not a value",
			args:  []string{"-c", "-l", "debug"},
			known: []string{"-c", "-l"},
			want:  []string{"-c", "-l", "debug"},
		},
		{
			name:  "repeated flag keeps order",
			args:  []string{"-d", "one.db", "-d", "two.db"},
			known: []string{"-d"},
			want:  []string{"-d", "one.db", "-d", "two.db"},
		},
		{
			name:  "empty",
			args:  nil,
			known: []string{"-d"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.known))
		})
	}
}

func TestConfigPath(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"bin", "-c", "/tmp/a.json"}, want: "/tmp/a.json"},
		{name: "long among others", args: []string{"bin", "-d", "x.db", "-config", "/tmp/b.json"}, want: "/tmp/b.json"},
		{name: "last wins", args: []string{"bin", "-c", "/tmp/1.json", "-config", "/tmp/2.json"}, want: "/tmp/2.json"},
		{name: "double dash", args: []string{"bin", "--config", "/tmp/c.toml"}, want: "/tmp/c.toml"},
		{name: "double dash equals", args: []string{"bin", "--config=/tmp/d.json"}, want: "/tmp/d.json"},
		{name: "double dash short", args: []string{"bin", "--c", "/tmp/e.json"}, want: "/tmp/e.json"},
		{name: "absent", args: []string{"bin", "-d", "x.db"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			got, err := ConfigPath()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigPath_MissingValue(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	for _, args := range [][]string{
		{"bin", "-c"},
		{"bin", "-d", "x.db", "--config"},
	} {
		os.Args = args
		_, err := ConfigPath()
		require.Error(t, err, "args %v", args)
	}
}
