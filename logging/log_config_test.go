package logging

import (
	"strings"
	"testing"

	"go.viam.com/test"
)

func verifySetLevels(registry *Registry, expectedMatches map[string]string) bool {
	for name, level := range expectedMatches {
		logger, ok := registry.loggerNamed(name)
		if !ok || !strings.EqualFold(level, logger.GetLevel().String()) {
			return false
		}
	}
	return true
}

func createTestRegistry(loggerNames []string) *Registry {
	manager := newRegistry()
	for _, name := range loggerNames {
		manager.registerLogger(name, NewBlankLogger(name))
	}
	return manager
}

func TestValidatePattern(t *testing.T) {
	t.Parallel()

	type testCfg struct {
		pattern string
		isValid bool
	}

	tests := []testCfg{
		{"slic.cluster", true},
		{"slic.cluster.*", true},
		{"slic.*.io", true},
		{"slic.*.*", true},
		{"*.connectivity", true},
		{"*", true},

		{"slic..cluster", false},
		{"slic.cluster.", false},
		{".slic.cluster", false},
		{"slic.cluster.**", false},
		{"_.slic", false},
		{"slic.-", false},
		{"slic cluster", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.pattern, func(t *testing.T) {
			t.Parallel()
			test.That(t, validatePattern(tc.pattern), test.ShouldEqual, tc.isValid)
		})
	}
}

func TestUpdateConfig(t *testing.T) {
	logger := NewBlankLogger("errors")

	registry := createTestRegistry([]string{"slic", "slic.io", "slic.segment"})
	err := registry.UpdateConfig([]LoggerPatternConfig{
		{Pattern: "slic.*", Level: "debug"},
		{Pattern: "slic.io", Level: "error"},
	}, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, verifySetLevels(registry, map[string]string{
		"slic":         "Info",
		"slic.io":      "Error",
		"slic.segment": "Debug",
	}), test.ShouldBeTrue)

	// Reapplying an empty config resets everything to INFO.
	test.That(t, registry.UpdateConfig(nil, logger), test.ShouldBeNil)
	test.That(t, verifySetLevels(registry, map[string]string{
		"slic":         "Info",
		"slic.io":      "Info",
		"slic.segment": "Info",
	}), test.ShouldBeTrue)

	err = registry.UpdateConfig([]LoggerPatternConfig{{Pattern: "slic", Level: "loud"}}, logger)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestValidatePatterns(t *testing.T) {
	test.That(t, ValidatePatterns([]LoggerPatternConfig{{Pattern: "slic.*", Level: "debug"}}), test.ShouldBeNil)
	err := ValidatePatterns([]LoggerPatternConfig{{Pattern: "slic..io", Level: "debug"}})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "invalid logger pattern")
	err = ValidatePatterns([]LoggerPatternConfig{{Pattern: "slic", Level: "loud"}})
	test.That(t, err.Error(), test.ShouldContainSubstring, "unknown log level")
}

func TestSubloggerOfRegisteredLogger(t *testing.T) {
	parent := NewBlankLogger("subtest")
	RegisterLogger("subtest", parent)
	test.That(t, UpdateLoggerRegistryConfig([]LoggerPatternConfig{{Pattern: "subtest.*", Level: "error"}}, parent), test.ShouldBeNil)
	defer func() {
		test.That(t, UpdateLoggerRegistryConfig(nil, parent), test.ShouldBeNil)
	}()

	child := parent.Sublogger("cluster")
	registered, ok := LoggerNamed("subtest.cluster")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, registered, test.ShouldEqual, child)
	test.That(t, child.GetLevel(), test.ShouldEqual, ERROR)

	// A logger that is not the registered instance does not register its children.
	NewBlankLogger("subtest").Sublogger("other")
	_, ok = LoggerNamed("subtest.other")
	test.That(t, ok, test.ShouldBeFalse)
}
