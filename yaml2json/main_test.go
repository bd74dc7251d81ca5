package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	out := bytes.Buffer{}
	err := convert(strings.NewReader("roles:\n  web:\n    classes: [nginx, base]\n  db: ~\nport: 80\n"), &out)
	require.NoError(t, err)
	require.Equal(t, `{
 "roles": {
  "web": {
   "classes": [
    "nginx",
    "base"
   ]
  },
  "db": null
 },
 "port": 80
}
`, out.String())
}

func TestConvert_empty(t *testing.T) {
	out := bytes.Buffer{}
	require.NoError(t, convert(strings.NewReader(``), &out))
	require.Equal(t, "null\n", out.String())
}

func TestConvert_invalid(t *testing.T) {
	require.Error(t, convert(strings.NewReader("a: [\n"), &bytes.Buffer{}))
}
