package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleScenario(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario: User logs in
    Given a user
    When  they log in
    Then  they see the dashboard
`)
	f, err := Parse("login.feature", content)
	require.NoError(t, err)
	assert.Equal(t, "Login", f.Title())
	assert.Equal(t, "login.feature", f.File)
	require.Len(t, f.Scenarios, 1)

	sc := f.Scenarios[0]
	assert.Equal(t, "User logs in", sc.Title())
	assert.Equal(t, []string{"Scenario: User logs in"}, sc.Description)
	assert.Equal(t, 2, sc.Line)
	require.Len(t, sc.Steps, 3)
	assert.Equal(t, "Given a user", sc.Steps[0].Text)
	assert.Equal(t, "a user", sc.Steps[0].Match)
	assert.Equal(t, "Given", sc.Steps[0].Keyword)
	assert.Equal(t, "When  they log in", sc.Steps[1].Text)
	assert.Equal(t, "they log in", sc.Steps[1].Match)
	assert.Equal(t, 5, sc.Steps[2].Line)
}

func TestParse_MultipleScenariosPreserveOrder(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario: User logs in
    Given a user
    When they log in

  Scenario: User fails login
    Given a user
    When they use the wrong password
    Then they see an error
`)
	f, err := Parse("login.feature", content)
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 2)
	assert.Equal(t, "User logs in", f.Scenarios[0].Title())
	assert.Len(t, f.Scenarios[0].Steps, 2)
	assert.Equal(t, "User fails login", f.Scenarios[1].Title())
	require.Len(t, f.Scenarios[1].Steps, 3)
	assert.Equal(t, "they see an error", f.Scenarios[1].Steps[2].Match)
}

func TestParse_FeatureDescriptionIsIndented(t *testing.T) {
	content := []byte(`Feature: Login
    In order to use the site
  As a member

  Scenario: User logs in
    Given a user
`)
	f, err := Parse("login.feature", content)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Feature: Login",
		"  In order to use the site",
		"  As a member",
	}, f.Description)
}

func TestParse_KeywordsAreCaseInsensitive(t *testing.T) {
	content := []byte(`feature: Login
  SCENARIO: User logs in
    given a user
    WHEN they log in
    tHeN they see the dashboard
    and a welcome banner
    BUT no warning
`)
	f, err := Parse("login.feature", content)
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 1)
	require.Len(t, f.Scenarios[0].Steps, 5)
	assert.Equal(t, "BUT", f.Scenarios[0].Steps[4].Keyword)
	assert.Equal(t, "no warning", f.Scenarios[0].Steps[4].Match)
}

func TestParse_BlankLinesWithinScenario(t *testing.T) {
	content := []byte("Feature: Login\r\n  Scenario: User logs in\r\n    Given a user\r\n\r\n   \t\r\n    Then they see the dashboard\r\n")
	f, err := Parse("login.feature", content)
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 1)
	assert.Len(t, f.Scenarios[0].Steps, 2)
}

func TestParse_DuplicateStepLinesCollapse(t *testing.T) {
	content := []byte(`Feature: Cart
  Scenario: Add twice
    Given an empty cart
    When I add an apple
    And I add a pear
    When I add an apple
`)
	f, err := Parse("cart.feature", content)
	require.NoError(t, err)
	steps := f.Scenarios[0].Steps
	require.Len(t, steps, 3)
	assert.Equal(t, "When I add an apple", steps[1].Text)
	assert.Equal(t, "And I add a pear", steps[2].Text)
}

func TestParse_SameStepInDifferentScenariosIsKept(t *testing.T) {
	content := []byte(`Feature: Cart
  Scenario: One
    Given an empty cart
  Scenario: Two
    Given an empty cart
`)
	f, err := Parse("cart.feature", content)
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 2)
	assert.Len(t, f.Scenarios[0].Steps, 1)
	assert.Len(t, f.Scenarios[1].Steps, 1)
}

func TestParse_ScenarioWithoutSteps(t *testing.T) {
	f, err := Parse("login.feature", []byte("Feature: Login\n  Scenario: Nothing yet\n"))
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 1)
	assert.Empty(t, f.Scenarios[0].Steps)
}

func TestParse_UnknownLineInScenario(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario: User logs in
    Given a user
    Eventually they log in
`)
	_, err := Parse("login.feature", content)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 4, perr.Line)
	assert.Equal(t, "Eventually they log in", perr.Text)
	assert.Contains(t, err.Error(), "Eventually they log in")
	assert.Contains(t, err.Error(), "login.feature:4")
}

func TestParse_LineBeforeFeature(t *testing.T) {
	content := []byte(`Some preamble
Feature: Login
`)
	_, err := Parse("login.feature", content)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, "Some preamble", perr.Text)
}

func TestParse_CommentsAreNotGrammar(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario: User logs in
    # a comment
    Given a user
`)
	_, err := Parse("login.feature", content)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "# a comment", perr.Text)
}

func TestParse_StepBeforeScenarioIsDescription(t *testing.T) {
	content := []byte(`Feature: Login
  Given this reads like a step
  Scenario: User logs in
    Given a user
`)
	f, err := Parse("login.feature", content)
	require.NoError(t, err)
	assert.Equal(t, "  Given this reads like a step", f.Description[1])
	assert.Len(t, f.Scenarios[0].Steps, 1)
}

func TestParse_SecondFeatureHeaderContinuesDescription(t *testing.T) {
	content := []byte(`Feature: A
  Scenario: a
    Given x
Feature: B
  More about B
  Scenario: b
    Given y
`)
	f, err := Parse("two.feature", content)
	require.NoError(t, err)
	assert.Equal(t, []string{"Feature: A", "Feature: B", "  More about B"}, f.Description)
	require.Len(t, f.Scenarios, 2)
	assert.Equal(t, "Given x", f.Scenarios[0].Steps[0].Text)
	assert.Equal(t, "Given y", f.Scenarios[1].Steps[0].Text)
}

func TestParse_StepAfterSecondFeatureHeaderIsDescription(t *testing.T) {
	content := []byte(`Feature: A
  Scenario: a
    Given x
Feature: B
  Given not a step here
`)
	f, err := Parse("two.feature", content)
	require.NoError(t, err)
	assert.Equal(t, "  Given not a step here", f.Description[2])
	assert.Len(t, f.Scenarios[0].Steps, 1)
}

func TestParse_EmptyFile(t *testing.T) {
	_, err := Parse("empty.feature", []byte("\n\n  \n"))
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 0, perr.Line)
	assert.Equal(t, "empty.feature: no Feature: header", err.Error())
}
