//go:build android || ios

package game

// Mobile builds ship only the generated eye; there is no file dialog.
func (g *Game) openImageDialog() error {
	return nil
}
