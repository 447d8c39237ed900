package mappings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_SingleClassScenario(t *testing.T) {
	input := "a.B -> x:\n" +
		"    int field -> f\n" +
		"    void method(int,a.B) -> m\n"

	result, err := Convert(input)
	require.NoError(t, err)

	// A renamed class in a descriptor is L + its obfuscated name + ;, so a.B becomes Lx; here.
	assert.Equal(t, "x a/B\n\tf field\n\tm (ILx;)V method\n", string(result.Output))
	assert.Equal(t, 1, result.Stats.Classes)
	assert.Equal(t, 1, result.Stats.Fields)
	assert.Equal(t, 1, result.Stats.Methods)
	assert.Equal(t, 0, result.Stats.External)
	assert.Empty(t, result.Stats.Duplicates)
}

func TestConvert_Golden(t *testing.T) {
	input, err := os.ReadFile(filepath.Join("testdata", "client.txt"))
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("testdata", "client.tsrg"))
	require.NoError(t, err)

	result, err := Convert(string(input))
	require.NoError(t, err)

	if string(result.Output) != string(want) {
		diff := diffmatchpatch.New()
		t.Log(diff.DiffPrettyText(diff.DiffMain(string(want), string(result.Output), false)))
		t.Fatal("converted mapping did not match testdata/client.tsrg")
	}

	assert.Equal(t, 2, result.Stats.Classes)
	assert.Equal(t, 4, result.Stats.Fields)
	assert.Equal(t, 8, result.Stats.Methods)
	assert.Equal(t, 1, result.Stats.External, "only java.lang.String appears in a method signature")
	assert.Equal(t, 14, result.Stats.Lines())
}

func TestConvert_GoldenHasUniqueHeaders(t *testing.T) {
	input, err := os.ReadFile(filepath.Join("testdata", "client.txt"))
	require.NoError(t, err)

	table, err := BuildClassTable(string(input))
	require.NoError(t, err)

	assert.Empty(t, table.Duplicates())
	assert.Equal(t, 2, table.Len())
}

func TestConvert_ClassLinesMatchObfuscatedNames(t *testing.T) {
	input := "net.minecraft.client.Minecraft -> enn:\n" +
		"net.minecraft.Util -> ac:\n" +
		"net.minecraft.server.Packaged -> a.b.c:\n"

	result, err := Convert(input)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(result.Output), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "enn net/minecraft/client/Minecraft", lines[0])
	assert.Equal(t, "ac net/minecraft/Util", lines[1])
	assert.Equal(t, "a/b/c net/minecraft/server/Packaged", lines[2])

	for _, l := range lines {
		assert.False(t, strings.HasPrefix(l, "\t"), "class lines are never indented: %q", l)
		assert.NotContains(t, l, ";")
	}
}

func TestConvert_PackagedObfuscatedNameInDescriptor(t *testing.T) {
	input := "a.B -> c.d:\n" +
		"    a.B self(a.B[]) -> s\n"

	result, err := Convert(input)
	require.NoError(t, err)

	assert.Equal(t, "c/d a/B\n\ts ([Lc/d;)Lc/d; self\n", string(result.Output))
}

func TestConvert_ForwardReference(t *testing.T) {
	input := "a.First -> a:\n" +
		"    a.Second next(a.Second) -> a\n" +
		"a.Second -> b:\n"

	result, err := Convert(input)
	require.NoError(t, err)

	assert.Equal(t, "a a/First\n\ta (Lb;)Lb; next\nb a/Second\n", string(result.Output))
}

func TestConvert_UnknownClassPassesThrough(t *testing.T) {
	input := "a.B -> x:\n" +
		"    java.lang.String name(java.lang.String,java.util.Map[]) -> a\n"

	result, err := Convert(input)
	require.NoError(t, err)

	assert.Equal(t, "x a/B\n\ta (Ljava/lang/String;[Ljava/util/Map;)Ljava/lang/String; name\n", string(result.Output))
	assert.Equal(t, 2, result.Stats.External)
}

func TestConvert_CommentsBlankLinesAndCRLF(t *testing.T) {
	input := "# header comment\r\n" +
		"\r\n" +
		"a.B -> x:\r\n" +
		"    # inline comment\r\n" +
		"\tint count -> c\r\n"

	result, err := Convert(input)
	require.NoError(t, err)

	assert.Equal(t, "x a/B\n\tc count\n", string(result.Output))
}

func TestConvert_EmptyInput(t *testing.T) {
	result, err := Convert("# only comments\n\n")
	require.NoError(t, err)

	assert.Empty(t, result.Output)
	assert.Equal(t, 0, result.Stats.Lines())
}

func TestConvert_DuplicateHeaderLastWins(t *testing.T) {
	input := "a.B -> x:\n" +
		"a.B -> y:\n" +
		"c.D -> z:\n" +
		"    a.B get() -> g\n"

	result, err := Convert(input)
	require.NoError(t, err)

	assert.Equal(t, "x a/B\ny a/B\nz c/D\n\tg ()Ly; get\n", string(result.Output))
	assert.Equal(t, []string{"La/B;"}, result.Stats.Duplicates)
}

func TestConvert_MalformedHeaderAborts(t *testing.T) {
	input := "a.B -> x:\n" +
		"    int f -> a\n" +
		"c.D x\n"

	result, err := Convert(input)
	require.Error(t, err)
	assert.Empty(t, result.Output)

	var headerErr *MalformedHeaderError
	require.True(t, errors.As(err, &headerErr))
	assert.Equal(t, 3, headerErr.Line)
	assert.Equal(t, "c.D x", headerErr.Text)
}

func TestConvert_MalformedMemberAborts(t *testing.T) {
	input := "a.B -> x:\n" +
		"    int f -> a\n" +
		"    void broken(int -> b\n"

	result, err := Convert(input)
	require.Error(t, err)
	assert.Empty(t, result.Output)

	var memberErr *MalformedMemberError
	require.True(t, errors.As(err, &memberErr))
	assert.Equal(t, 3, memberErr.Line)
	assert.Contains(t, memberErr.Error(), "unbalanced parentheses")
	assert.Contains(t, memberErr.Error(), "void broken(int -> b")
}
