// File: display/commands.go
// Author: momentics <momentics@gmail.com>
//
// SSD1308 command set not covered by the driver: hardware scroll and
// display inversion.

package display

const (
	cmdRightHorizontalScroll         = 0x26
	cmdLeftHorizontalScroll          = 0x27
	cmdVerticalRightHorizontalScroll = 0x29
	cmdVerticalLeftHorizontalScroll  = 0x2A
	cmdDeactivateScroll              = 0x2E
	cmdActivateScroll                = 0x2F
	cmdSetVerticalScrollArea         = 0xA3

	cmdNormalDisplay  = 0xA6
	cmdInverseDisplay = 0xA7
)

// Frame-interval encodings for the scroll setup commands.
const (
	ScrollPer2Frames   uint8 = 0x07
	ScrollPer3Frames   uint8 = 0x04
	ScrollPer4Frames   uint8 = 0x05
	ScrollPer5Frames   uint8 = 0x00
	ScrollPer25Frames  uint8 = 0x06
	ScrollPer64Frames  uint8 = 0x01
	ScrollPer128Frames uint8 = 0x02
	ScrollPer256Frames uint8 = 0x03
)

// ScrollDirection selects the horizontal component of a combined
// vertical/horizontal scroll.
type ScrollDirection uint8

const (
	ScrollVerticalRight ScrollDirection = cmdVerticalRightHorizontalScroll
	ScrollVerticalLeft  ScrollDirection = cmdVerticalLeftHorizontalScroll
)
