//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const processPerMonitorDPIAware = 2

var (
	shell32 = windows.NewLazySystemDLL("shell32.dll")
	shcore  = windows.NewLazySystemDLL("shcore.dll")

	procSetAppID = shell32.NewProc("SetCurrentProcessExplicitAppUserModelID")
	procSetDPI   = shcore.NewProc("SetProcessDpiAwareness")
)

// SetAppID gives the process its own taskbar identity so the window does not
// group with other programs sharing the same host executable.
func SetAppID(id string) error {
	if err := procSetAppID.Find(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	p, err := windows.UTF16PtrFromString(id)
	if err != nil {
		return err
	}
	if hr, _, _ := procSetAppID.Call(uintptr(unsafe.Pointer(p))); hr != 0 {
		return fmt.Errorf("SetCurrentProcessExplicitAppUserModelID: HRESULT 0x%08x", uint32(hr))
	}
	return nil
}

// EnableDPIAwareness asks for per monitor DPI awareness so screen coordinates
// from the input hook match physical pixels.
func EnableDPIAwareness() error {
	if err := procSetDPI.Find(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	if hr, _, _ := procSetDPI.Call(processPerMonitorDPIAware); hr != 0 {
		return fmt.Errorf("SetProcessDpiAwareness: HRESULT 0x%08x", uint32(hr))
	}
	return nil
}
