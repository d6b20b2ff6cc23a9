package smu

// Reader provides access to the data the ryzen_smu kernel module
// exposes under sysfs. Everything except Table is display-oriented
// metadata; a failed metadata read falls back to a zero value rather
// than failing the caller.
type Reader interface {
	// Table returns the current raw PM table bytes. Fails when the
	// module is not loaded or the attribute is not readable; the caller
	// treats either as "no buffer to scan".
	Table() ([]byte, error)

	// TableVersion returns the PM table version tag, 0 if unreadable.
	TableVersion() uint32

	// TableSize returns the advertised PM table size in bytes.
	TableSize() (int, error)

	// CodenameID returns the raw codename index, 0 if unreadable.
	CodenameID() int

	// Codename returns the decoded processor codename.
	Codename() Codename

	// FirmwareVersion returns the SMU firmware version string.
	FirmwareVersion() (string, error)

	// DriverVersion returns the ryzen_smu driver version string.
	DriverVersion() (string, error)
}
