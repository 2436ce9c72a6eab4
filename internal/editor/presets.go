package editor

import (
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/registry"
)

func spritePreset() Preset {
	return Preset{
		Kind:                Sprite,
		Title:               "Sprite Editor",
		StorageKey:          "sprite-editor-layout",
		DefaultFloatingSize: entity.Size{Width: 320, Height: 240},
		defaultLayout: func() *entity.LayoutNode {
			center := entity.NewSplitNode("sprite-center", entity.SplitVertical, []*entity.LayoutNode{
				panel("canvas", 160),
				panel("frames", 96),
			}, []float64{75, 25})
			right := entity.NewSplitNode("sprite-right", entity.SplitVertical, []*entity.LayoutNode{
				panel("layers", 0),
				panel("palette", 0),
			}, []float64{55, 45})
			return entity.NewSplitNode("sprite-root", entity.SplitHorizontal, []*entity.LayoutNode{
				panel("tools", 64),
				center,
				right,
			}, []float64{12, 66, 22})
		},
		panels: []registry.Panel{
			{ID: "tools", Title: "Tools", HideHeader: true, Content: registry.Text("Pencil  Eraser  Fill  Picker  Select")},
			{ID: "canvas", Title: "Canvas", Content: registry.Text("Sprite sheet 256x256, zoom 400%")},
			{ID: "frames", Title: "Frames", Content: registry.Text("Frame 1 of 8 at 12 fps")},
			{ID: "layers", Title: "Layers", Content: registry.Text("Outline\nShading\nBase")},
			{ID: "palette", Title: "Palette", Content: registry.Text("16 colors, PICO-8")},
			{ID: "animation-preview", Title: "Animation Preview", DefaultSize: entity.Size{Width: 240, Height: 240},
				Content: registry.Text("Looping preview")},
			{ID: "properties", Title: "Properties", DefaultSize: entity.Size{Width: 280, Height: 200},
				Content: registry.Text("Tile size 16x16, padding 0")},
		},
	}
}

func videoPreset() Preset {
	return Preset{
		Kind:                Video,
		Title:               "Video Editor",
		StorageKey:          "video-editor-layout",
		DefaultFloatingSize: entity.Size{Width: 400, Height: 300},
		defaultLayout: func() *entity.LayoutNode {
			return entity.NewSplitNode("video-root", entity.SplitVertical, []*entity.LayoutNode{
				panel("preview", 180),
				panel("timeline", 120),
			}, []float64{68, 32})
		},
		panels: []registry.Panel{
			{ID: "preview", Title: "Preview", Content: registry.Text("00:00:12:04 / 00:03:40:00")},
			{ID: "timeline", Title: "Timeline", Content: registry.Text("V1  V2  A1  A2")},
			{ID: "media", Title: "Media", DefaultSize: entity.Size{Width: 360, Height: 280},
				Content: registry.Text("intro.mp4\nbroll.mov\nvoiceover.wav")},
			{ID: "inspector", Title: "Inspector", DefaultSize: entity.Size{Width: 300, Height: 360},
				Content: registry.Text("Clip: intro.mp4\nSpeed 100%")},
			{ID: "effects", Title: "Effects", Content: registry.Text("Crossfade  Blur  Color grade")},
			{ID: "audio-mixer", Title: "Audio Mixer", DefaultSize: entity.Size{Width: 320, Height: 240},
				Content: registry.Text("A1 -6 dB\nA2 -12 dB")},
			{ID: "history", Title: "History", Content: registry.Text("Trim clip\nAdd marker")},
		},
	}
}

func imagePreset() Preset {
	return Preset{
		Kind:                Image,
		Title:               "Image Editor",
		StorageKey:          "image-editor-layout",
		DefaultFloatingSize: entity.Size{Width: 360, Height: 280},
		defaultLayout: func() *entity.LayoutNode {
			right := entity.NewSplitNode("image-right", entity.SplitVertical, []*entity.LayoutNode{
				panel("layers", 0),
				panel("adjustments", 0),
				panel("history", 0),
			}, []float64{40, 35, 25})
			return entity.NewSplitNode("image-root", entity.SplitHorizontal, []*entity.LayoutNode{
				panel("tools", 64),
				panel("canvas", 200),
				right,
			}, []float64{10, 65, 25})
		},
		panels: []registry.Panel{
			{ID: "tools", Title: "Tools", HideHeader: true, Content: registry.Text("Move  Crop  Brush  Clone  Remove background")},
			{ID: "canvas", Title: "Canvas", Content: registry.Text("photo.png 4032x3024, 25%")},
			{ID: "layers", Title: "Layers", Content: registry.Text("Background\nSubject")},
			{ID: "adjustments", Title: "Adjustments", Content: registry.Text("Exposure 0.0\nContrast +5")},
			{ID: "history", Title: "History", Content: registry.Text("Open\nCrop")},
			{ID: "histogram", Title: "Histogram", DefaultSize: entity.Size{Width: 280, Height: 160},
				Content: registry.Text("RGB histogram")},
			{ID: "navigator", Title: "Navigator", DefaultSize: entity.Size{Width: 240, Height: 180},
				Content: registry.Text("Viewport 25%")},
		},
	}
}
