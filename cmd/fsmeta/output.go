package main

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/fsmeta/internal/schema"
	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals
var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			Width(8).
			Align(lipgloss.Right)

	pathStyle = lipgloss.NewStyle().
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

func field(label string, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

// modeString renders a POSIX-style mode like ls does, e.g. "drwxr-xr-x".
func modeString(mode uint32) string {
	fm := fs.FileMode(mode & 0o777) //nolint:mnd

	switch mode & schema.ModeTypeMask {
	case schema.ModeDir:
		fm |= fs.ModeDir
	case schema.ModeSymlink:
		fm |= fs.ModeSymlink
	case schema.ModeRegular:
	default:
		fm |= fs.ModeIrregular
	}

	if mode&0o4000 != 0 {
		fm |= fs.ModeSetuid
	}
	if mode&0o2000 != 0 {
		fm |= fs.ModeSetgid
	}
	if mode&0o1000 != 0 {
		fm |= fs.ModeSticky
	}

	return fm.String()
}

func typeString(stat schema.FileStat) string {
	switch {
	case stat.IsSymlink:
		return "symbolic link"
	case stat.IsDirectory:
		return "directory"
	case stat.IsFile:
		return "regular file"
	default:
		return "special file"
	}
}

func ownerString(id int, name string, err error) string {
	if id == schema.NoID {
		return dimStyle.Render("n/a")
	}

	if err != nil {
		return fmt.Sprintf("%d %s", id, dimStyle.Render("(unknown)"))
	}

	return fmt.Sprintf("%d (%s)", id, name)
}

func (app *App) formatStat(stat schema.FileStat, hash string) string {
	var sb strings.Builder

	path := stat.Path
	if stat.IsSymlink {
		path += " -> " + stat.SymlinkTarget
	}

	userName, userErr := stat.UserName(app.identityHandler)
	groupName, groupErr := stat.GroupName(app.identityHandler)

	lines := []string{
		field("Path", pathStyle.Render(path)),
		field("Type", typeString(stat)),
		field("Mode", fmt.Sprintf("%07o (%s)", stat.Mode, modeString(stat.Mode))),
		field("Size", fmt.Sprintf("%s (%d bytes)", humanize.IBytes(uint64(max(stat.SizeBytes, 0))), stat.SizeBytes)),
		field("User", ownerString(stat.UserID, userName, userErr)),
		field("Group", ownerString(stat.GroupID, groupName, groupErr)),
		field("Modify", fmt.Sprintf("%s (%s)", stat.ModifiedAt.Format("2006-01-02 15:04:05 -0700"), humanize.Time(stat.ModifiedAt))),
	}

	if hash != "" {
		lines = append(lines, field("BLAKE3", hash))
	}

	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatFailure(path string, err error) string {
	return failStyle.Render(fmt.Sprintf("%s: %v", path, err))
}
