package colin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustReadDocument(t *testing.T, doc string) *Element {
	t.Helper()
	root, err := ReadDocument(strings.NewReader(doc), 0)
	require.NoError(t, err)
	return root
}

func parseDomainString(t *testing.T, doc string) (*MixedIntVars, []DroppedToken) {
	t.Helper()
	domain := mustReadDocument(t, doc).Find("Domain")
	require.NotNil(t, domain)
	return ParseDomain(domain)
}

func TestParseDomain_AllKinds(t *testing.T) {
	// GIVEN a Domain with reals, integers and bits
	doc := `<Domain>
  <Real>1.0 2.5	-3e-1</Real>
  <Integer>4 -5 0x10</Integer>
  <Binary>1 0 1</Binary>
</Domain>`

	// WHEN the domain is parsed
	vars, dropped := parseDomainString(t, doc)

	// THEN each sequence holds its values in order
	assert.Empty(t, dropped)
	assert.Equal(t, []float64{1.0, 2.5, -0.3}, vars.Reals)
	assert.Equal(t, []int64{4, -5, 16}, vars.Ints)
	assert.Equal(t, []uint8{1, 0, 1}, vars.Bits)
}

func TestParseDomain_EmptyContent_EmptySequences(t *testing.T) {
	// GIVEN a Domain whose children have no text
	doc := `<Domain><Real>  </Real><Integer/><Binary></Binary></Domain>`

	// WHEN the domain is parsed
	vars, dropped := parseDomainString(t, doc)

	// THEN every sequence is empty (and non-nil)
	assert.Empty(t, dropped)
	assert.NotNil(t, vars.Reals)
	assert.Len(t, vars.Reals, 0)
	assert.Len(t, vars.Ints, 0)
	assert.Len(t, vars.Bits, 0)
}

func TestParseDomain_MalformedTokens_DroppedNotFatal(t *testing.T) {
	// GIVEN reals and integers mixed with tokens that are not numeric literals
	doc := `<Domain><Real>1 2+3 __import__('os') 4</Real><Integer>7 seven 8</Integer></Domain>`

	// WHEN the domain is parsed
	vars, dropped := parseDomainString(t, doc)

	// THEN valid tokens survive and the others are reported as dropped
	assert.Equal(t, []float64{1, 4}, vars.Reals)
	assert.Equal(t, []int64{7, 8}, vars.Ints)
	require.Len(t, dropped, 3)
	assert.Equal(t, TagReal, dropped[0].Tag)
	assert.Equal(t, "2+3", dropped[0].Token)
	assert.Equal(t, "__import__('os')", dropped[1].Token)
	assert.Equal(t, TagInteger, dropped[2].Tag)
	assert.Equal(t, "seven", dropped[2].Token)
	assert.Error(t, dropped[2].Err)
}

func TestParseDomain_BinaryIgnoresOtherCharacters(t *testing.T) {
	// GIVEN binary text with separators and stray characters
	doc := `<Domain><Binary>1,0;x 2 11 0</Binary></Domain>`

	// WHEN the domain is parsed
	vars, _ := parseDomainString(t, doc)

	// THEN only '0' and '1' contribute, one bit per character
	assert.Equal(t, []uint8{1, 0, 1, 1, 0}, vars.Bits)
}

func TestParseDomain_RepeatedElements_Append(t *testing.T) {
	// GIVEN two Real elements and an unrecognized tag
	doc := `<Domain><Real>1</Real><Other>9</Other><Real>2 3</Real></Domain>`

	// WHEN the domain is parsed
	vars, _ := parseDomainString(t, doc)

	// THEN reals from both elements are appended in document order
	assert.Equal(t, []float64{1, 2, 3}, vars.Reals)
	assert.Empty(t, vars.Ints)
}

func TestParseDomain_Deterministic(t *testing.T) {
	// GIVEN a domain document
	doc := `<Domain><Real>0.1 0.2</Real><Integer>3</Integer><Binary>0110</Binary></Domain>`

	// WHEN it is parsed twice
	first, _ := parseDomainString(t, doc)
	second, _ := parseDomainString(t, doc)

	// THEN both models are identical
	assert.Equal(t, first, second)
}

func TestParseReal(t *testing.T) {
	tests := []struct {
		tok     string
		want    float64
		wantErr bool
	}{
		{"1", 1, false},
		{"-2.5", -2.5, false},
		{"+3", 3, false},
		{".5", 0.5, false},
		{"3e-2", 0.03, false},
		{"1E3", 1000, false},
		{"0x1f", 31, false},
		{"0b101", 5, false},
		{"0o17", 15, false},
		{"010", 10, false},
		{"1_000", 0, true},
		{"0x1_f", 0, true},
		{"nan", 0, true},
		{"inf", 0, true},
		{"1e400", 0, true},
		{"1+1", 0, true},
		{"abs(-1)", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, err := ParseReal(tt.tok)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		tok     string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"-7", -7, false},
		{"0x10", 16, false},
		{"017", 17, false},
		{"-0b11", -3, false},
		{"1_000", 0, true},
		{"0x_10", 0, true},
		{"2.9", 2, false},
		{"-2.9", -2, false},
		{"1e3", 1000, false},
		{"9223372036854775807", 9223372036854775807, false},
		{"9223372036854775808", 0, true},
		{"1e19", 0, true},
		{"nan", 0, true},
		{"2*3", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, err := ParseInteger(tt.tok)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRealAndInteger_AgreeOnIntegerTokens(t *testing.T) {
	// GIVEN integer-valued tokens in every accepted notation
	for _, tok := range []string{"010", "0", "-7", "+12", "0x1f", "0o17", "0b101"} {
		// WHEN parsed as a real and as an integer
		r, rerr := ParseReal(tok)
		i, ierr := ParseInteger(tok)

		// THEN both succeed with the same value
		require.NoError(t, rerr, tok)
		require.NoError(t, ierr, tok)
		assert.Equal(t, float64(i), r, tok)
	}
}

func TestMixedIntVars_String(t *testing.T) {
	vars := &MixedIntVars{Reals: []float64{1, 2.5}, Ints: []int64{3}, Bits: nil}
	assert.Equal(t, "Reals 1 2.5\nIntegers 3\nBinary", vars.String())
}
