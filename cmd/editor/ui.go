package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/piratemaker/editor"
	"golang.org/x/image/font/gofont/goregular"
)

const toolbarHeight = 48

// EditorUI is the toolbar across the top and a status line along the
// bottom.
type EditorUI struct {
	UI      *ebitenui.UI
	ToolBar *ToolBar
	status  *widget.Text
}

func (u *EditorUI) SetStatus(s string) {
	if u == nil || u.status == nil {
		return
	}
	u.status.Label = s
}

func BuildEditorUI(onToolSelected func(tool editor.Tool), initialTool editor.Tool) *EditorUI {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbarContainer, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, onToolSelected, initialTool)

	status := widget.NewText(
		widget.TextOpts.Text("", &fontFace, color.White),
	)
	statusBar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(ui.PrimaryTheme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}),
		)),
	)
	statusBar.AddChild(status)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	statusBar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
		StretchHorizontal:  true,
	}
	root.AddChild(toolbarContainer)
	root.AddChild(statusBar)

	ui.Container = root
	return &EditorUI{UI: ui, ToolBar: toolBar, status: status}
}
