package api

import "context"

// AboutUsStore is the remote store for the About Us singleton.
type AboutUsStore interface {
	ListAboutUs(ctx context.Context) ([]AboutUsEntry, error)
	CreateAboutUs(ctx context.Context, in AboutUsInput) (AboutUsEntry, error)
	UpdateAboutUs(ctx context.Context, id string, in AboutUsInput) (AboutUsEntry, error)
	DeleteAboutUs(ctx context.Context, id string) error
}

// SponsorStore is the remote store for sponsors.
type SponsorStore interface {
	ListSponsors(ctx context.Context) ([]Sponsor, error)
	CreateSponsor(ctx context.Context, in SponsorInput) (Sponsor, error)
	UpdateSponsor(ctx context.Context, id string, in SponsorUpdate) (Sponsor, error)
	DeleteSponsor(ctx context.Context, id string) error
}

// NomineeStore is the remote store for nominees.
type NomineeStore interface {
	ListNominees(ctx context.Context) ([]Nominee, error)
	CreateNominee(ctx context.Context, in NomineeInput) (Nominee, error)
	UpdateNominee(ctx context.Context, id string, in NomineeInput) (Nominee, error)
	DeleteNominee(ctx context.Context, id string) error
}

// Ensure Client implements every store at compile time.
var (
	_ AboutUsStore = (*Client)(nil)
	_ SponsorStore = (*Client)(nil)
	_ NomineeStore = (*Client)(nil)
)
