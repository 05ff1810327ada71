package widgets

// Typewriter reveals a line of text a few runes per tick once started. With
// motion off the full text shows immediately.
type Typewriter struct {
	runes   []rune
	shown   int
	started bool
	motion  bool
	Step    int // runes revealed per tick, default 2
}

func NewTypewriter(text string, motion bool) *Typewriter {
	t := &Typewriter{runes: []rune(text), motion: motion, Step: 2}
	if !motion {
		t.started = true
		t.shown = len(t.runes)
	}
	return t
}

// Start begins the reveal. Calling again after the reveal began is a no-op,
// so re-entering the viewport does not restart the effect.
func (t *Typewriter) Start() {
	if t.started {
		return
	}
	t.started = true
	if !t.motion {
		t.shown = len(t.runes)
	}
}

func (t *Typewriter) Animating() bool {
	return t.started && t.shown < len(t.runes)
}

func (t *Typewriter) Tick() {
	if !t.Animating() {
		return
	}
	step := t.Step
	if step <= 0 {
		step = 2
	}
	t.shown += step
	if t.shown > len(t.runes) {
		t.shown = len(t.runes)
	}
}

func (t *Typewriter) Done() bool {
	return t.shown >= len(t.runes)
}

// Text returns the revealed prefix, with a block cursor while typing.
func (t *Typewriter) Text() string {
	if !t.started {
		return ""
	}
	if t.Done() {
		return string(t.runes)
	}
	return string(t.runes[:t.shown]) + "▌"
}
