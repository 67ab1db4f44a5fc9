package render

// Scene backdrops: sky top, sky horizon, ground
type sceneTheme struct {
	Name    string
	SkyTop  RGB
	Horizon RGB
	Ground  RGB
	Prop    rune
	PropFg  RGB
}

var sceneThemes = map[int]sceneTheme{
	1: {"Fish Market", RGB{40, 60, 110}, RGB{240, 170, 110}, RGB{90, 70, 55}, '⌂', RGB{200, 150, 90}},
	2: {"Park", RGB{60, 120, 200}, RGB{170, 210, 240}, RGB{60, 130, 60}, '♣', RGB{30, 90, 30}},
	3: {"Back Alleys", RGB{20, 20, 40}, RGB{70, 60, 90}, RGB{50, 50, 55}, '▮', RGB{90, 90, 100}},
	4: {"Rooftops", RGB{25, 35, 80}, RGB{120, 100, 160}, RGB{110, 60, 50}, '▲', RGB{150, 80, 60}},
	5: {"Home", RGB{250, 180, 120}, RGB{255, 230, 180}, RGB{140, 110, 80}, '♥', RGB{220, 80, 90}},
}

var (
	rgbPlayer     = RGB{240, 240, 240}
	rgbPlayerRun  = RGB{255, 220, 120}
	rgbHeartFull  = RGB{230, 60, 80}
	rgbHeartEmpty = RGB{90, 90, 100}
	rgbPanelBg    = RGB{20, 22, 30}
	rgbPanelText  = RGB{210, 210, 220}
	rgbPanelDone  = RGB{120, 220, 120}
	rgbIconBorder = RGB{255, 210, 60}
	rgbIconBg     = RGB{60, 30, 10}
	rgbIconText   = RGB{255, 240, 200}
	rgbStoryBg    = RGB{30, 20, 30}
	rgbStoryText  = RGB{255, 235, 220}
	rgbLabel      = RGB{255, 255, 255}
)

func themeFor(scene int) sceneTheme {
	if t, ok := sceneThemes[scene]; ok {
		return t
	}
	return sceneThemes[2]
}

// SceneName returns the display name of a lobby scene
func SceneName(scene int) string {
	return themeFor(scene).Name
}
