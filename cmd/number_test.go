package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const limbsDoc = `
selection:
  - leg
  - arm
objects:
  - name: leg
  - name: arm
`

func TestNumberCmd_EndToEnd(t *testing.T) {
	scene := writeScene(t, limbsDoc)

	out, errOut, err := runCommand(t, "number", "jnt", "--scene", scene)
	require.NoError(t, err)

	assert.Contains(t, out, "jnt01")
	assert.Contains(t, out, "jnt02")
	assert.Empty(t, errOut)

	assert.Equal(t, []string{"jnt01", "jnt02"}, loadNames(t, scene, "jnt01", "jnt02"))
}

// Selecting the same object twice renames it once, not once per --select.
func TestNumberCmd_RepeatedSelectRenamesOnce(t *testing.T) {
	scene := writeScene(t, limbsDoc)

	out, errOut, err := runCommand(t, "number", "jnt", "--scene", scene, "--select", "leg", "--select", "leg")
	require.NoError(t, err)

	assert.Contains(t, out, "jnt01")
	assert.NotContains(t, out, "jnt02")
	assert.Empty(t, errOut)

	assert.Equal(t, []string{"jnt01", "arm"}, loadNames(t, scene, "jnt01", "arm"))
}

func TestNumberCmd_StartAndPaddingFlags(t *testing.T) {
	scene := writeScene(t, limbsDoc)

	out, _, err := runCommand(t, "number", "geo", "--scene", scene, "--start", "99", "--padding", "2")
	require.NoError(t, err)

	// the field widens once the number outgrows the padding
	assert.Contains(t, out, "geo99")
	assert.Contains(t, out, "geo100")
}

func TestNumberCmd_DryRunLeavesSceneUntouched(t *testing.T) {
	scene := writeScene(t, limbsDoc)

	out, _, err := runCommand(t, "number", "jnt", "--scene", scene, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "jnt01")
	assert.Contains(t, out, "dry run")

	assert.Equal(t, []string{"leg", "arm"}, loadNames(t, scene, "leg", "arm"))
}

func TestNumberCmd_CopyFlagUsesClipboard(t *testing.T) {
	scene := writeScene(t, limbsDoc)

	fake := &fakeClipboard{}
	original := clip
	clip = fake

	defer func() { clip = original }()

	_, _, err := runCommand(t, "number", "jnt", "--scene", scene, "--copy")
	require.NoError(t, err)

	assert.Contains(t, fake.text, "leg → jnt01")
	assert.Contains(t, fake.text, "arm → jnt02")
}

func TestNumberCmd_EmptySelectionIsANoOp(t *testing.T) {
	scene := writeScene(t, "objects:\n  - name: solo\n")

	out, _, err := runCommand(t, "number", "jnt", "--scene", scene)
	require.NoError(t, err)

	assert.Contains(t, out, "No objects renamed")
	assert.Equal(t, []string{"solo"}, loadNames(t, scene, "solo"))
}
