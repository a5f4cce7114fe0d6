package mailbox

import "errors"

// Error kinds returned by mailbox operations. Each is a sentinel so
// callers can use errors.Is against the wrapped result.
var (
	ErrInvalidArgs           = errors.New("mailbox: invalid arguments")
	ErrDeviceOpen            = errors.New("mailbox: cannot open device")
	ErrNotPassThroughCapable = errors.New("mailbox: device does not support SCSI pass-through")
	ErrIoctlFailed           = errors.New("mailbox: ioctl failed")
	ErrUnsafeSector          = errors.New("mailbox: mailbox sector is not all-zero")
	ErrInvalidResponse       = errors.New("mailbox: invalid response")
)
