package cli

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/pariharam/jathagam/internal/config"
	"github.com/pariharam/jathagam/internal/contract"
	"github.com/pariharam/jathagam/internal/service"
	"github.com/pariharam/jathagam/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App on a clock frozen at testutil.Now.
func testApp(t *testing.T) *App {
	t.Helper()
	settings := testutil.Settings(testutil.Now)

	return &App{
		Dasha:   service.NewDashaService(settings),
		Chart:   service.NewChartService(settings),
		Navamsa: service.NewNavamsaService(),
		Config:  config.Defaults(),
		// IsInteractive left nil: tests never own a terminal.
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return plain(buf.String()), err
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func plain(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var birthArgs = []string{"--birth", "1990-05-14 08:30", "--tz", "Asia/Kolkata", "--moon", "55"}

func dashaArgs(extra ...string) []string {
	return append(append([]string{"dasha"}, birthArgs...), extra...)
}

// --- dasha ---

func TestDashaCmd_Text(t *testing.T) {
	out, err := executeCmd(t, testApp(t), dashaArgs()...)
	require.NoError(t, err)

	assert.Contains(t, out, "Birth balance: Mars 6y 1m 15d")
	assert.Contains(t, out, "Rahu Mahadasha")
	assert.Contains(t, out, "▶ Jupiter Mahadasha")
	assert.Contains(t, out, "Current at 2026-10-15")
}

func TestDashaCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), dashaArgs("--json", "--depth", "2")...)
	require.NoError(t, err)

	var got contract.Dasha
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2026-10-15", got.EvaluatedAt)
	assert.Equal(t, "Mars", got.Balance.Planet)
	require.Len(t, got.Mahadashas, 8)
	assert.Equal(t, "Mars", got.Mahadashas[0].Planet)
	assert.Equal(t, "1990-05-14", got.Mahadashas[0].StartDate)

	require.NotEmpty(t, got.Mahadashas[0].Bhuktis)
	assert.Empty(t, got.Mahadashas[0].Bhuktis[0].Pratyantardashas)
}

func TestDashaCmd_CutoffDisabledGivesFullCycle(t *testing.T) {
	out, err := executeCmd(t, testApp(t), dashaArgs("--json", "--depth", "1", "--cutoff", "0")...)
	require.NoError(t, err)

	var got contract.Dasha
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Mahadashas, 9)
}

func TestDashaCmd_NowAndCurrentOnly(t *testing.T) {
	out, err := executeCmd(t, testApp(t), dashaArgs("--now", "2000-01-01", "--current")...)
	require.NoError(t, err)

	assert.NotContains(t, out, "VIMSHOTTARI")
	assert.Contains(t, out, "Current at 2000-01-01: Rahu")
}

func TestDashaCmd_RequiresMoon(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "dasha", "--birth", "1990-05-14 08:30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moon")
}

func TestDashaCmd_BadBirth(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "dasha", "--birth", "14/05/1990", "--moon", "55")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--birth")
}

func TestDashaCmd_BadNow(t *testing.T) {
	_, err := executeCmd(t, testApp(t), dashaArgs("--now", "soon")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--now")
}

func TestDashaCmd_InvalidDepthIsCoded(t *testing.T) {
	_, err := executeCmd(t, testApp(t), dashaArgs("--depth", "7")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_INPUT")
}

func TestDashaCmd_AllAndCurrentConflict(t *testing.T) {
	_, err := executeCmd(t, testApp(t), dashaArgs("--all", "--current")...)
	assert.Error(t, err)
}

func TestDashaCmd_FlagDefaultsFromConfig(t *testing.T) {
	app := testApp(t)
	app.Config.Depth = 1

	out, err := executeCmd(t, app, dashaArgs("--json")...)
	require.NoError(t, err)

	var got contract.Dasha
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got.Mahadashas)
	assert.Empty(t, got.Mahadashas[0].Bhuktis)
}

// --- navamsa ---

func TestNavamsaCmd_Table(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "navamsa", "0", "29.999", "30")
	require.NoError(t, err)

	assert.Contains(t, out, "NAVAMSA")
	assert.Contains(t, out, "Aries")
	assert.Contains(t, out, "Sagittarius")
	assert.Contains(t, out, "Capricorn")
}

func TestNavamsaCmd_JSONNegativeLongitude(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "navamsa", "--json", "--", "-12")
	require.NoError(t, err)

	var got []contract.NavamsaEntry
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 11, got[0].RasiIdx)
	assert.Equal(t, "dual", got[0].Modality)
	assert.Equal(t, 8, got[0].SignIdx)
}

func TestNavamsaCmd_Rejects(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "navamsa", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid longitude")

	_, err = executeCmd(t, testApp(t), "navamsa")
	assert.Error(t, err)
}

// --- chart ---

func TestChartCmd_Text(t *testing.T) {
	path := testutil.WritePositionsFile(t, t.TempDir(), "birth.yaml", testutil.NewTestPositions())

	out, err := executeCmd(t, testApp(t), "chart", "--positions", path)
	require.NoError(t, err)

	assert.Contains(t, out, "JATHAGAM")
	assert.Contains(t, out, "Leo")
	assert.Contains(t, out, "Mrigashira")
	assert.Contains(t, out, "Ketu")
	assert.Contains(t, out, "▶ Jupiter")
}

func TestChartCmd_JSON(t *testing.T) {
	path := testutil.WritePositionsFile(t, t.TempDir(), "birth.json", testutil.NewTestPositions())

	out, err := executeCmd(t, testApp(t), "chart", "-p", path, "--json")
	require.NoError(t, err)

	var got contract.Chart
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got.ID)
	require.NotNil(t, got.Lagna)
	assert.Equal(t, "Leo", got.Lagna.Name)
	assert.Equal(t, "Taurus", got.MoonSign.Name)
	assert.Len(t, got.Planets, 9)
	assert.Len(t, got.Mahadashas, 8)
	assert.Equal(t, "Lahiri", got.Metadata.Ayanamsa)
	assert.Equal(t, "1990-05-14", got.Mahadashas[0].StartDate)
}

func TestChartCmd_TimezoneFallsBackToConfig(t *testing.T) {
	f := testutil.NewTestPositions(testutil.WithBirth("1990-05-14 03:00", ""), testutil.WithoutLagna())
	path := testutil.WritePositionsFile(t, t.TempDir(), "birth.yaml", f)

	app := testApp(t)
	app.Config.Timezone = "UTC"
	out, err := executeCmd(t, app, "chart", "-p", path, "--json", "--depth", "1")
	require.NoError(t, err)

	var got contract.Chart
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Nil(t, got.Lagna)
	assert.Equal(t, "1990-05-14", got.Mahadashas[0].StartDate)
}

func TestChartCmd_InvalidPositions(t *testing.T) {
	f := testutil.NewTestPositions(testutil.WithoutPlanet("Moon"), testutil.WithPlanet("Pluto", 12))
	path := testutil.WritePositionsFile(t, t.TempDir(), "birth.yaml", f)

	_, err := executeCmd(t, testApp(t), "chart", "-p", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "planets.Moon is required")
	assert.Contains(t, err.Error(), "Pluto")
}

func TestChartCmd_MissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "chart", "-p", "/nonexistent/birth.yaml")
	assert.Error(t, err)
}

// --- wizard ---

func TestWizardCmd_RefusesWithoutTerminal(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "wizard")
	assert.ErrorIs(t, err, errNotInteractive)

	app.IsInteractive = func() bool { return false }
	_, err = executeCmd(t, app, "wizard")
	assert.ErrorIs(t, err, errNotInteractive)
}

func TestWizardAnswers_Request(t *testing.T) {
	a := wizardAnswers{Date: "1990-05-14", Clock: " 08:30", Timezone: "Asia/Kolkata", Moon: "55", Depth: 2}

	req, err := a.request()
	require.NoError(t, err)
	assert.True(t, testutil.Birth.Equal(req.Birth))
	assert.InDelta(t, 55.0, req.MoonLongitude, 1e-9)
	assert.Equal(t, 2, req.Depth)

	a.Moon = "north"
	_, err = a.request()
	assert.Error(t, err)

	a.Moon, a.Timezone = "55", "Nowhere/Else"
	_, err = a.request()
	assert.Error(t, err)
}

func TestFormValidators(t *testing.T) {
	assert.NoError(t, validateDate("1990-05-14"))
	assert.Error(t, validateDate("14-05-1990"))
	assert.Error(t, validateDate(""))

	assert.NoError(t, validateClock("23:59"))
	assert.Error(t, validateClock("8.30pm"))

	assert.NoError(t, validateLongitude("123.4"))
	assert.NoError(t, validateLongitude("-10"))
	assert.Error(t, validateLongitude("NaN"))
	assert.Error(t, validateLongitude("east"))
}

func TestBirthForm_Builds(t *testing.T) {
	a := wizardAnswers{}
	assert.NotNil(t, birthForm(&a, "Asia/Kolkata"))
}
