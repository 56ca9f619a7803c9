package config

// Presets are named wandering behaviors. "drift" matches the defaults.
var Presets = map[string]*Config{
	"calm": {
		MaxIters: 120, FPS: 60,
		Walk: WalkConfig{BaseRe: -0.8, BaseIm: 0.156, Radius: 0.15, Accel: 0.4, Damping: 0.95},
	},
	"drift": {
		MaxIters: 120, FPS: 60,
		Walk: WalkConfig{BaseRe: -0.8, BaseIm: 0.156, Radius: 0.40, Accel: 1.2, Damping: 0.85},
	},
	"storm": {
		MaxIters: 160, FPS: 60,
		Walk: WalkConfig{BaseRe: -0.8, BaseIm: 0.156, Radius: 0.60, Accel: 2.5, Damping: 0.60},
	},
	"glacial": {
		MaxIters: 200, FPS: 30,
		Walk: WalkConfig{BaseRe: -0.75, BaseIm: 0.11, Radius: 0.25, Accel: 0.15, Damping: 0.97},
	},
}

// GetPreset returns the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns the preset names in a stable order.
func ListPresets() []string {
	return []string{"calm", "drift", "storm", "glacial"}
}
