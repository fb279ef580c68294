package encoding_test

import (
	"testing"

	"github.com/lestrrat-go/minihtml/encoding"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	for _, name := range []string{"utf8", "UTF-8", "euc-jp", "cp932", "iso-8859-1", "koi8u", "windows-1251", "gbk"} {
		require.NotNil(t, encoding.Load(name), "Load(%q) should succeed", name)
	}
	require.Nil(t, encoding.Load("no-such-charset"))
}

func TestISO88591(t *testing.T) {
	e := encoding.Load("iso-8859-1")
	dec := e.NewDecoder()
	enc := e.NewEncoder()
	for i := 0x20; i <= 0xff; i++ {
		// windows-1252 assigns a few of these to punctuation, skip them
		if i >= 0x80 && i <= 0x9f {
			continue
		}
		v := string([]byte{byte(i)})
		s, err := dec.String(v)
		require.NoError(t, err, "decode %#x", i)
		require.Equal(t, string(rune(i)), s, "decode %#x", i)

		v1, err := enc.String(s)
		require.NoError(t, err, "encode %q", s)
		require.Equal(t, v, v1, "round trip %#x", i)
	}
}

func TestDecode(t *testing.T) {
	// "<p>caf\xe9</p>" in latin-1
	s, err := encoding.Decode("iso-8859-1", []byte("<p>caf\xe9</p>"))
	require.NoError(t, err)
	require.Equal(t, "<p>café</p>", s)

	// "日本" in Shift_JIS
	s, err = encoding.Decode("shift_jis", []byte{0x93, 0xfa, 0x96, 0x7b})
	require.NoError(t, err)
	require.Equal(t, "日本", s)

	_, err = encoding.Decode("no-such-charset", []byte("x"))
	require.Error(t, err)
	require.ErrorIs(t, err, encoding.ErrUnsupportedEncoding)
	require.Contains(t, err.Error(), "no-such-charset")
}
