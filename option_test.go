package cmdline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionDefinitionErrors(t *testing.T) {
	tests := []struct {
		name   string
		option Option
		want   string
	}{
		{
			name:   "no name at all",
			option: Option{Kind: Switch},
			want:   "option needs a short or a long name",
		},
		{
			name:   "short name too long",
			option: Option{Short: "ab", Kind: Switch},
			want:   `short option name "ab" must be a single character`,
		},
		{
			name:   "invalid character",
			option: Option{Long: "a b", Kind: Switch},
			want:   `option name "a b" includes the character ' '`,
		},
		{
			name:   "unknown kind",
			option: Option{Short: "x", Kind: OptionKind(99)},
			want:   `option -x has unknown kind 99`,
		},
		{
			name:   "value kind without value name",
			option: Option{Long: "output", Kind: MandatoryValue},
			want:   `option --output takes a value and needs a value name`,
		},
		{
			name:   "optional value kind without value name",
			option: Option{Long: "color", Kind: OptionalValue},
			want:   `option --color takes a value and needs a value name`,
		},
		{
			name:   "function without handler",
			option: Option{Long: "help", Kind: Function},
			want:   `option --help needs a handler`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewParser().AddOption(tt.option)
			var defErr *DefinitionError
			require.ErrorAs(t, err, &defErr)
			require.EqualError(t, err, tt.want)
		})
	}
}

func TestOptionIdentity(t *testing.T) {
	both := &Option{Short: "v", Long: "verbose"}
	require.Equal(t, "verbose", both.key())
	require.Equal(t, "--verbose", both.flag())

	short := &Option{Short: "v"}
	require.Equal(t, "v", short.key())
	require.Equal(t, "-v", short.flag())
}

func TestArgumentDefinitionErrors(t *testing.T) {
	var defErr *DefinitionError

	err := NewParser().AddArgument(Argument{Kind: Mandatory})
	require.ErrorAs(t, err, &defErr)
	require.EqualError(t, err, "argument needs a name")

	err = NewParser().AddArgument(Argument{Name: "FILE"})
	require.ErrorAs(t, err, &defErr)
	require.EqualError(t, err, "argument FILE has unknown kind 0")
}

func TestArgumentVariadicMarker(t *testing.T) {
	a := &Argument{Name: "EXTRA...", Kind: Optional}
	require.True(t, a.variadic())
	require.Equal(t, "EXTRA", a.displayName())

	plain := &Argument{Name: "FILE", Kind: Mandatory}
	require.False(t, plain.variadic())
	require.Equal(t, "FILE", plain.displayName())
}
