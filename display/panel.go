// File: display/panel.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package display

import (
	"image/color"
	"time"

	"github.com/eapache/queue"
	"github.com/rs/zerolog"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
)

// Panel geometry. The SSD1308 module on the board is 128x64, addressed
// as an 8x16 grid of 8-pixel text cells.
const (
	Width  = 128
	Height = 64

	cellSize = 8
	Rows     = Height / cellSize
	Cols     = Width / cellSize

	// DefaultAddress is the panel's I2C target address.
	DefaultAddress uint16 = 0x3C
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

// Panel drives the SSD1308 status display through a command queue.
// Enqueue methods are cheap and never fail; Drain executes the queued
// operations on the dispatch thread, logging and dropping failures.
type Panel struct {
	dev  *ssd1306.Device
	addr uint16
	cmds *queue.Queue
	log  zerolog.Logger
}

// New wires a panel to an I2C bus. Init must run before any other
// operation reaches the hardware.
func New(bus drivers.I2C, addr uint16, log zerolog.Logger) *Panel {
	if addr == 0 {
		addr = DefaultAddress
	}
	dev := ssd1306.NewI2C(bus)
	return &Panel{
		dev:  dev,
		addr: addr,
		cmds: queue.New(),
		log:  log.With().Str("component", "display").Logger(),
	}
}

// Init configures the controller and draws the self-check banner: text,
// a short inverse flash, back to normal. Runs synchronously; a display
// that fails its self-check is reported but does not abort startup.
func (p *Panel) Init() error {
	p.dev.Configure(ssd1306.Config{
		Width:   Width,
		Height:  Height,
		Address: p.addr,
	})
	p.dev.ClearBuffer()
	p.writeText(0, 3, "Display checked!")
	if err := p.dev.Display(); err != nil {
		return err
	}
	p.dev.Command(cmdInverseDisplay)
	time.Sleep(250 * time.Millisecond)
	p.dev.Command(cmdNormalDisplay)
	return nil
}

// Clear queues a full buffer clear.
func (p *Panel) Clear() {
	p.enqueue("clear", func() error {
		p.dev.ClearBuffer()
		return p.dev.Display()
	})
}

// WriteAt queues text at a (row, col) cell position.
func (p *Panel) WriteAt(row, col int, text string) {
	p.enqueue("write", func() error {
		p.writeText(row, col, text)
		return p.dev.Display()
	})
}

// ClearRegion queues blanking of cells cells starting at (row, col).
func (p *Panel) ClearRegion(row, col, cells int) {
	p.enqueue("clear region", func() error {
		x0 := int16(col * cellSize)
		y0 := int16(row * cellSize)
		for y := y0; y < y0+cellSize && y < Height; y++ {
			for x := x0; x < x0+int16(cells*cellSize) && x < Width; x++ {
				p.dev.SetPixel(x, y, black)
			}
		}
		return p.dev.Display()
	})
}

// SetVerticalScroll queues scroll configuration for the page range
// [startPage, endPage] at the given frame interval and vertical offset.
func (p *Panel) SetVerticalScroll(dir ScrollDirection, startPage, endPage, frames, offset uint8) {
	p.enqueue("scroll setup", func() error {
		p.dev.Command(cmdSetVerticalScrollArea)
		p.dev.Command(0x00)
		p.dev.Command(Height)
		p.dev.Command(uint8(dir))
		p.dev.Command(0x00) // dummy byte
		p.dev.Command(startPage)
		p.dev.Command(frames)
		p.dev.Command(endPage)
		p.dev.Command(offset)
		return nil
	})
}

// ActivateScroll queues scroll start.
func (p *Panel) ActivateScroll() {
	p.enqueue("scroll on", func() error {
		p.dev.Command(cmdActivateScroll)
		return nil
	})
}

// DeactivateScroll queues scroll stop.
func (p *Panel) DeactivateScroll() {
	p.enqueue("scroll off", func() error {
		p.dev.Command(cmdDeactivateScroll)
		return nil
	})
}

// Drain executes all queued operations. Called from the dispatch thread
// between cycles; errors are logged and the failed operation dropped.
func (p *Panel) Drain() {
	for p.cmds.Length() > 0 {
		op := p.cmds.Remove().(panelOp)
		if err := op.run(); err != nil {
			p.log.Warn().Err(err).Str("op", op.name).Msg("display operation failed")
		}
	}
}

// Pending returns the number of queued operations.
func (p *Panel) Pending() int { return p.cmds.Length() }

type panelOp struct {
	name string
	run  func() error
}

func (p *Panel) enqueue(name string, run func() error) {
	p.cmds.Add(panelOp{name: name, run: run})
}

func (p *Panel) writeText(row, col int, text string) {
	x := int16(col * cellSize)
	// Baseline sits at the bottom of the cell.
	y := int16(row*cellSize + cellSize - 1)
	tinyfont.WriteLine(p.dev, &tinyfont.Org01, x, y, text, white)
}
