package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	IconWarning  = "\uf071" // warning
	IconLink     = "\uf0c1" // link
	IconExternal = "\uf08e" // external link
	IconTree     = "\uf1bb" // tree
	IconDatabase = "\uf1c0" // database
)
