package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/twilight-wallpaper/twilight/internal/sky"
)

// Surface is a render target whose result can be presented as an ebiten image.
type Surface interface {
	sky.Raster

	// Flush makes everything drawn so far visible through Image.
	Flush()
	// Release frees the GPU resources held by the surface.
	Release()
	Image() *ebiten.Image
}

var (
	_ Surface = (*ScreenCanvas)(nil)
	_ Surface = (*SoftwareSurface)(nil)
)

// NewSurface creates a w x h surface, rasterised on the GPU when gpu is set
// and on the CPU otherwise.
func NewSurface(gpu bool, w, h int) Surface {
	if gpu {
		return NewScreenCanvas(w, h)
	}
	return NewSoftwareSurface(w, h)
}

// SoftwareSurface rasterises on the CPU and uploads the finished frame.
type SoftwareSurface struct {
	*ImageCanvas
	screen *ebiten.Image
}

// NewSoftwareSurface creates a w x h software surface.
func NewSoftwareSurface(w, h int) *SoftwareSurface {
	return &SoftwareSurface{
		ImageCanvas: NewImageCanvas(w, h),
		screen:      ebiten.NewImage(w, h),
	}
}

// Flush uploads the canvas pixels.
func (s *SoftwareSurface) Flush() {
	s.screen.WritePixels(s.Pixels().Pix)
}

func (s *SoftwareSurface) Release() {
	s.screen.Deallocate()
}

func (s *SoftwareSurface) Image() *ebiten.Image {
	return s.screen
}
