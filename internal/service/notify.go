package service

import (
	"context"
	"fmt"
	"log/slog"

	"procurement_sync/internal/domain"
)

// DonorUpdate is the donor-visible part of a status change.
type DonorUpdate struct {
	Title    string
	Message  string
	TenderID string
	URL      string
}

// DonorNotifier fans a project update out to every distinct donor who funded
// the project. Delivery is best-effort.
type DonorNotifier struct {
	donations  DonationStore
	notifier   Notifier
	qualifying []string
	logger     *slog.Logger
}

func NewDonorNotifier(donations DonationStore, notifier Notifier, qualifying []string, logger *slog.Logger) *DonorNotifier {
	return &DonorNotifier{
		donations:  donations,
		notifier:   notifier,
		qualifying: qualifying,
		logger:     logger.With("component", "notify"),
	}
}

// NotifyDonors attempts one delivery per donor and returns how many succeeded.
// Only a failure to resolve the donor list is returned as an error.
func (d *DonorNotifier) NotifyDonors(ctx context.Context, project *domain.Project, update DonorUpdate) (int, error) {
	donors, err := d.donations.DistinctDonors(ctx, project.ID, d.qualifying)
	if err != nil {
		return 0, fmt.Errorf("list donors: %w", err)
	}

	if len(donors) == 0 {
		d.logger.Info("no donors to notify", "project_id", project.ID)
		return 0, nil
	}

	d.logger.Info("notifying donors", "project", project.FacilityName, "donors", len(donors))

	sent := 0
	seen := make(map[string]struct{}, len(donors))
	for _, donor := range donors {
		if _, dup := seen[donor.Email]; dup {
			continue
		}
		seen[donor.Email] = struct{}{}

		err := d.notifier.SendDonorUpdateNotice(ctx, domain.DonorUpdateNotice{
			DonorName:     donor.Name,
			DonorEmail:    donor.Email,
			ProjectName:   project.FacilityName,
			UpdateTitle:   update.Title,
			UpdateMessage: update.Message,
			TenderID:      update.TenderID,
			URL:           update.URL,
		})
		if err != nil {
			d.logger.Warn("failed to notify donor", "email", donor.Email, "project_id", project.ID, "error", err)
			continue
		}
		sent++
	}

	return sent, nil
}
