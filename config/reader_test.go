package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/slic/logging"
	"go.viam.com/slic/vision/superpixel"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slic.json")
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)
	return path
}

func TestRead(t *testing.T) {
	t.Setenv("SLIC_SEGMENTS", "300")
	path := writeConfig(t, `{
		"segmentation": {
			"segment_count": "${SLIC_SEGMENTS}",
			"compactness": 20,
			"render_mode": "fill",
			"highlight": "#00ff00"
		},
		"log": [{"pattern": "slic.*", "level": "debug"}]
	}`)

	cfg, err := Read(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.ConfigFilePath, test.ShouldEqual, path)

	expected := superpixel.NewConfig(300, 20)
	expected.RenderMode = superpixel.RenderModeFill
	expected.Highlight = "#00ff00"
	test.That(t, cfg.Segmentation, test.ShouldResemble, expected)
	test.That(t, cfg.Log, test.ShouldResemble, []logging.LoggerPatternConfig{{Pattern: "slic.*", Level: "debug"}})
}

func TestReadDefaults(t *testing.T) {
	cfg, err := Read(writeConfig(t, `{}`))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Segmentation, test.ShouldResemble, superpixel.DefaultConfig())
	test.That(t, cfg.Log, test.ShouldBeEmpty)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.json"))
	test.That(t, err, test.ShouldNotBeNil)

	_, err = FromReader("", strings.NewReader(`{"segmentation": `))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode Config")

	_, err = FromReader("", strings.NewReader(`{"segmentation": {"segments": 4}}`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "segments")

	_, err = FromReader("", strings.NewReader(`{"segmentation": {"compactness": -1, "iterations": 0}}`))
	test.That(t, errors.Is(err, superpixel.ErrInvalidParameter), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "compactness")
	test.That(t, err.Error(), test.ShouldContainSubstring, "iterations")

	_, err = FromReader("", strings.NewReader(`{"log": [{"pattern": "a..b", "level": "info"}]}`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "a..b")
}
