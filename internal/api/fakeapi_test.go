package api_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/five82/podium/internal/api"
	"github.com/five82/podium/internal/fakeapi"
)

func TestDeleteThenListNeverReturnsID(t *testing.T) {
	backend := fakeapi.New()
	server := httptest.NewServer(backend.Handler())
	t.Cleanup(server.Close)

	c, err := api.NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	about, err := c.CreateAboutUs(ctx, api.AboutUsInput{Title: "T", Description: "D"})
	if err != nil {
		t.Fatalf("CreateAboutUs: %v", err)
	}
	sponsor, err := c.CreateSponsor(ctx, api.SponsorInput{
		CompanyName: "Acme", Description: "desc", Level: api.LevelGold,
		Logos: []api.Upload{{Filename: "logo.png", Data: []byte("x")}},
	})
	if err != nil {
		t.Fatalf("CreateSponsor: %v", err)
	}
	nominee, err := c.CreateNominee(ctx, api.NomineeInput{Round: "12TH", Stage: api.StageFinal})
	if err != nil {
		t.Fatalf("CreateNominee: %v", err)
	}

	if err := c.DeleteAboutUs(ctx, about.ID); err != nil {
		t.Fatalf("DeleteAboutUs: %v", err)
	}
	if err := c.DeleteSponsor(ctx, sponsor.ID); err != nil {
		t.Fatalf("DeleteSponsor: %v", err)
	}
	if err := c.DeleteNominee(ctx, nominee.ID); err != nil {
		t.Fatalf("DeleteNominee: %v", err)
	}

	entries, err := c.ListAboutUs(ctx)
	if err != nil {
		t.Fatalf("ListAboutUs: %v", err)
	}
	for _, e := range entries {
		if e.ID == about.ID {
			t.Fatalf("deleted about us %s still listed", about.ID)
		}
	}
	sponsors, err := c.ListSponsors(ctx)
	if err != nil {
		t.Fatalf("ListSponsors: %v", err)
	}
	for _, s := range sponsors {
		if s.ID == sponsor.ID {
			t.Fatalf("deleted sponsor %s still listed", sponsor.ID)
		}
	}
	nominees, err := c.ListNominees(ctx)
	if err != nil {
		t.Fatalf("ListNominees: %v", err)
	}
	for _, n := range nominees {
		if n.ID == nominee.ID {
			t.Fatalf("deleted nominee %s still listed", nominee.ID)
		}
	}

	// Deleting again surfaces the server's not-found message.
	err = c.DeleteSponsor(ctx, sponsor.ID)
	if got := api.UserMessage(err); got != "Sponsor not found" {
		t.Fatalf("UserMessage = %q, want Sponsor not found", got)
	}
}
