package entropy

// Init prepares process-wide acquisition state. Nothing needs
// preparing here; the hook exists for interface parity with platforms
// that do, and always reports success.
func Init() bool { return true }

// Cleanup releases process-wide acquisition state. It is a no-op: the
// lazy system binding is kept until process exit.
func Cleanup() {}

// KeepDevicesOpen sets whether device-backed sources should hold on
// to their handles between acquisitions. The device sources here open
// and close per call, so the flag has no effect; it exists for
// interface parity.
func KeepDevicesOpen(keep bool) {}
