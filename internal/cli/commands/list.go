package commands

import (
	"fmt"

	"github.com/aki/dircontents/internal/cli/ui"
	"github.com/aki/dircontents/internal/core/config"
	"github.com/aki/dircontents/internal/core/entry"
	"github.com/aki/dircontents/internal/core/listing"
	"github.com/aki/dircontents/internal/core/terminal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// listOptions holds the flags of the listing command
type listOptions struct {
	all         bool
	unsorted    bool
	reverse     bool
	size        bool
	human       bool
	base1000    bool
	dereference bool
	color       string
	width       int
}

func registerListFlags(cmd *cobra.Command, o *listOptions) {
	flags := cmd.Flags()
	flags.BoolVarP(&o.all, "all", "a", false, "Show hidden files")
	flags.BoolVarP(&o.unsorted, "unsorted", "U", false, "Don't sort items (use directory ordering)")
	flags.BoolVarP(&o.reverse, "reverse", "r", false, "Reverse the sorted order (ignored with -U)")
	flags.BoolVarP(&o.size, "size", "s", false, "Show file sizes, one entry per line")
	flags.BoolVarP(&o.human, "human-readable", "h", false, "With -s, print sizes with units (kB, MB, ...)")
	flags.BoolVarP(&o.base1000, "base-1000", "b", false, "With -s, use 1 kB = 1000 B instead of 1024 B")
	flags.BoolVarP(&o.dereference, "dereference", "L", false, "Color symlinks by the kind of their target")
	flags.StringVar(&o.color, "color", "auto", "Colorize output (auto, always, never)")
	flags.IntVar(&o.width, "width", 0, "Terminal width in columns (0 to detect)")
	// -h is human-readable, so help only has the long form
	flags.Bool("help", false, "Help for dircontents")
}

// apply overrides cfg with every flag given on the command line
func (o *listOptions) apply(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("all") {
		cfg.ShowHidden = o.all
	}
	if flags.Changed("unsorted") {
		switch {
		case o.unsorted:
			cfg.Sort = config.SortNatural
		case cfg.Sort == config.SortNatural:
			cfg.Sort = config.SortLexicographic
		}
	}
	// Reverse never applies to natural order
	if flags.Changed("reverse") && cfg.Sort != config.SortNatural {
		if o.reverse {
			cfg.Sort = config.SortReversed
		} else {
			cfg.Sort = config.SortLexicographic
		}
	}
	if flags.Changed("size") {
		cfg.ShowSize = o.size
	}
	if flags.Changed("human-readable") {
		cfg.HumanReadable = o.human
	}
	if flags.Changed("base-1000") {
		if o.base1000 {
			cfg.SizeBase = int(listing.Base1000)
		} else {
			cfg.SizeBase = int(listing.Base1024)
		}
	}
	if flags.Changed("dereference") {
		if o.dereference {
			cfg.Links = config.LinksTarget
		} else {
			cfg.Links = config.LinksSymlink
		}
	}
	if flags.Changed("color") {
		cfg.Color = o.color
	}
	if flags.Changed("width") {
		cfg.Width = o.width
	}
}

func runList(cmd *cobra.Command, global *globalOptions, o *listOptions, args []string) error {
	log, err := global.logger()
	if err != nil {
		return err
	}

	mgr, err := global.configManager()
	if err != nil {
		return err
	}
	cfg, err := mgr.Load(cmd.Context())
	if err != nil {
		return err
	}
	o.apply(cmd.Flags(), cfg)

	if cfg.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", cfg.Width)
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	mode, err := ui.ParseColorMode(cfg.Color)
	if err != nil {
		return err
	}
	mode = ui.EffectiveColorMode(mode)

	if o.reverse && opts.Sort == listing.SortNatural {
		log.Debug("reverse has no effect on natural order")
	}

	width := cfg.Width
	if width == 0 {
		var detected bool
		if width, detected = terminal.Width(); !detected {
			log.Debug("could not determine terminal width", "fallback", width)
		}
	}

	log.Debug("listing",
		"config", mgr.GetConfigPath(),
		"sort", opts.Sort.String(),
		"show_size", opts.ShowSize,
		"width", width,
		"color", string(mode),
	)

	out := ui.NewColorWriter(cmd.OutOrStdout(), mode)
	renderer := listing.NewRenderer(entry.OSFS{}, out, opts, width,
		listing.WithLogger(log),
		listing.WithWarningHandler(func(err error) {
			ui.Warning("%v", err)
		}),
	)

	renderErr := renderer.Render(args)
	// Blocks rendered before a failure are still printed
	if err := out.Flush(); err != nil {
		return listing.ErrWrite{Err: err}
	}
	return renderErr
}
