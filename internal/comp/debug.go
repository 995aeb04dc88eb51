package comp

import (
	"github.com/emberwm/ember/internal/log"
	"gopkg.in/yaml.v2"
)

// stateDump is the YAML shape of a compositor state snapshot.
type stateDump struct {
	Pointer struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"pointer"`
	Modifiers       string               `yaml:"modifiers"`
	Serial          uint32               `yaml:"serial"`
	ActiveWorkspace int                  `yaml:"active_workspace"`
	Workspaces      map[int][]string     `yaml:"workspaces"`
	Outputs         map[string][]float64 `yaml:"outputs"`
}

// dumpState writes a snapshot of the compositor state to the log. Triggered
// by SIGUSR1.
func (c *State) dumpState() {
	var dump stateDump
	dump.Pointer.X = c.pointerLoc.X
	dump.Pointer.Y = c.pointerLoc.Y
	dump.Modifiers = c.mods.Mods().String()
	dump.Serial = c.serial
	dump.ActiveWorkspace = c.workspaces.Current().Id()
	dump.Workspaces = make(map[int][]string)
	for _, ws := range c.workspaces.All() {
		titles := make([]string, 0, len(ws.Windows()))
		for _, win := range ws.Windows() {
			titles = append(titles, win.Title())
		}
		dump.Workspaces[ws.Id()] = titles
	}
	dump.Outputs = make(map[string][]float64)
	for _, o := range c.workspaces.Outputs() {
		geo := o.Geometry()
		dump.Outputs[o.Name()] = []float64{geo.X, geo.Y, geo.W, geo.H}
	}

	out, err := yaml.Marshal(&dump)
	if err != nil {
		log.Error("Failed to dump state: %s", err)
		return
	}
	log.Debug("State dump:\n%s", out)
}
