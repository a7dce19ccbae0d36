package fireworks

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_addResources(t *testing.T) {
	app := NewApp()

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)

	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)

	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")

	got, ok := Resource[MockResource2](app)
	require.True(t, ok)
	assert.Same(t, resource2, got)
}

func TestApp_SystemsResolveResources(t *testing.T) {
	app := NewApp()
	app.addResources(NewMockResource1("a"))

	var seen string
	app.UseSystem(System(func(r *MockResource1) {
		seen = r.name
		r.name = "b"
	}))

	require.True(t, app.Step())
	assert.Equal(t, "a", seen)

	r, _ := Resource[MockResource1](app)
	assert.Equal(t, "b", r.name, "systems receive the registered pointer")
}

func TestApp_MissingDependencyPanics(t *testing.T) {
	app := NewApp()
	app.UseSystem(System(func(r *MockResource2) {}))

	assert.Panics(t, func() { app.Step() })
}

func TestApp_StagesRunInOrder(t *testing.T) {
	app := NewApp()
	custom := Stage{Name: "Custom"}
	app.UseStage(custom, AfterStage(Update))

	var order []string
	record := func(name string) func() {
		return func() { order = append(order, name) }
	}
	app.UseSystem(System(record("finale")).InStage(Finale))
	app.UseSystem(System(record("custom")).InStage(custom))
	app.UseSystem(System(record("update")))
	app.UseSystem(System(record("prelude")).InStage(Prelude))

	app.Step()
	assert.Equal(t, []string{"prelude", "update", "custom", "finale"}, order)
}

func TestApp_UnknownStagePanics(t *testing.T) {
	app := NewApp()

	require.PanicsWithValue(t, "Stage Nowhere doesn't exist", func() {
		app.UseSystem(System(func() {}).InStage(Stage{Name: "Nowhere"}))
	})
	require.PanicsWithValue(t, "Stage Nowhere not found", func() {
		app.UseStage(Stage{Name: "Other"}, BeforeStage(Stage{Name: "Nowhere"}))
	})
}

func TestApp_ExitStopsRunAndRunsCleanups(t *testing.T) {
	app := NewApp()

	var cleanups []int
	frames := 0
	app.UseSystem(System(func(cmd *Commands) {
		frames++
		if frames == 3 {
			cmd.Exit()
		}
	}))
	cmd := app.Commands()
	cmd.OnShutdown(func() { cleanups = append(cleanups, 1) })
	cmd.OnShutdown(func() { cleanups = append(cleanups, 2) })

	app.Run()

	assert.Equal(t, 3, frames)
	assert.Equal(t, uint64(3), app.Frame())
	assert.Equal(t, []int{2, 1}, cleanups)
	assert.False(t, app.Step(), "no frames after exit")
}

func TestApp_LoggerFallsBackToNop(t *testing.T) {
	app := NewApp()
	assert.NotNil(t, app.Logger())

	var nilApp *App
	assert.NotNil(t, nilApp.Logger())

	app.UseModules(LoggingModule{Prefix: "test"})
	app.build()
	_, ok := app.Logger().(*DefaultLogger)
	assert.True(t, ok)
}
