package render

// Walking cat, facing right, one entry per animation frame
var catFrames = [4][3]string{
	{` /\_/\ `, `( o.o )~`, ` /|  |\ `},
	{` /\_/\ `, `( o.o )~`, `  / \/  `},
	{` /\_/\ `, `( o.o )~`, ` |\  /| `},
	{` /\_/\ `, `( o.o )~`, `  \/ \  `},
}

var mirrorRunes = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
}

// mirror flips an ASCII sprite line horizontally
func mirror(line string) string {
	rs := []rune(line)
	out := make([]rune, len(rs))
	for i, r := range rs {
		if m, ok := mirrorRunes[r]; ok {
			r = m
		}
		out[len(rs)-1-i] = r
	}
	return string(out)
}

// catSprite returns the lines for a frame and facing
func catSprite(frame int, faceLeft bool) [3]string {
	f := catFrames[((frame%len(catFrames))+len(catFrames))%len(catFrames)]
	if !faceLeft {
		return f
	}
	return [3]string{mirror(f[0]), mirror(f[1]), mirror(f[2])}
}
