package viewer

import (
	"errors"
	"testing"

	"github.com/mobil-koeln/oledview/internal/testutil"
)

func newTestOpener(goos string, ml *testutil.MockLauncher) *Opener {
	return &Opener{GOOS: goos, LookPath: ml.LookPath, Start: ml.Start}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs int
	}{
		{"darwin", "open", 1},
		{"linux", "xdg-open", 1},
		{"freebsd", "xdg-open", 1},
		{"windows", "cmd", 4},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := Command(tt.goos, "oled_preview.png")
			testutil.AssertNil(t, err)
			testutil.AssertEqual(t, name, tt.wantName)
			testutil.AssertLen(t, args, tt.wantArgs)
			testutil.AssertEqual(t, args[len(args)-1], "oled_preview.png")
		})
	}
}

func TestCommand_Unsupported(t *testing.T) {
	_, _, err := Command("plan9", "oled_preview.png")
	testutil.AssertTrue(t, errors.Is(err, ErrViewerUnavailable))
}

func TestOpener_Open(t *testing.T) {
	ml := testutil.NewMockLauncher("xdg-open")
	o := newTestOpener("linux", ml)

	res, err := o.Open("oled_preview.png")
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, res, ResultOpened)
	testutil.AssertEqual(t, ml.LastCall(), "xdg-open oled_preview.png")
}

func TestOpener_Windows(t *testing.T) {
	ml := testutil.NewMockLauncher("cmd")
	o := newTestOpener("windows", ml)

	res, err := o.Open(`C:\tmp\oled_preview.png`)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, res, ResultOpened)
	testutil.AssertEqual(t, ml.LastCall(), `cmd /c start  C:\tmp\oled_preview.png`)
}

func TestOpener_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		goos string
	}{
		{"launcher missing", "linux"},
		{"unsupported platform", "plan9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ml := testutil.NewMockLauncher()
			res, err := newTestOpener(tt.goos, ml).Open("oled_preview.png")

			testutil.AssertEqual(t, res, ResultUnavailable)
			testutil.AssertTrue(t, errors.Is(err, ErrViewerUnavailable))
			testutil.AssertEqual(t, ml.CallCount(), 0)
		})
	}
}

func TestOpener_StartFails(t *testing.T) {
	ml := testutil.NewMockLauncher("open")
	ml.StartErr = errors.New("exec format error")

	res, err := newTestOpener("darwin", ml).Open("oled_preview.png")
	testutil.AssertEqual(t, res, ResultFailed)
	testutil.AssertContains(t, err.Error(), "failed to start open")
	testutil.AssertFalse(t, errors.Is(err, ErrViewerUnavailable))
}

func TestResult_String(t *testing.T) {
	testutil.AssertEqual(t, ResultOpened.String(), "opened")
	testutil.AssertEqual(t, ResultUnavailable.String(), "unavailable")
	testutil.AssertEqual(t, ResultFailed.String(), "failed")
}

func TestNewOpener(t *testing.T) {
	o := NewOpener()
	testutil.AssertTrue(t, o.GOOS != "")
	testutil.AssertTrue(t, o.LookPath != nil)
	testutil.AssertTrue(t, o.Start != nil)
}
