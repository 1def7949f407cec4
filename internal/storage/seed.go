package storage

import (
	"context"
	"time"

	"github.com/jerdaw/kingston-care-connect/internal/models"
)

func daysAgo(n int) *time.Time {
	t := time.Now().Add(-time.Duration(n) * 24 * time.Hour)
	return &t
}

func weekdayHours(open, close string) models.WeeklyHours {
	h := models.WeeklyHours{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		h[day] = []models.TimeWindow{{Open: open, Close: close}}
	}
	return h
}

// SeedServices returns the built-in Kingston service directory used by the
// seed command and by tests. Coordinates are downtown Kingston and environs.
func SeedServices() []*models.Service {
	return []*models.Service{
		{
			ID:       "partners-in-mission-food-bank",
			Name:     models.LocalizedText{EN: "Partners in Mission Food Bank", FR: "Banque alimentaire Partners in Mission"},
			Description: models.LocalizedText{
				EN: "Emergency food hampers for individuals and families in need, no referral required.",
				FR: "Paniers de nourriture d'urgence pour les personnes et familles dans le besoin.",
			},
			Category:     models.CategoryFood,
			Verification: models.VerificationL3,
			IdentityTags: []string{"Families", "Newcomers"},
			Synthetic: models.SyntheticQueries{
				EN: []string{"i am hungry", "need food for my family", "where can i get groceries for free"},
				FR: []string{"j'ai faim", "besoin de nourriture"},
			},
			Location:     &models.Location{Lat: 44.2476, Lng: -76.5196},
			LastVerified: daysAgo(12),
			Hours:        weekdayHours("09:00", "16:00"),
		},
		{
			ID:       "martha-s-table",
			Name:     models.LocalizedText{EN: "Martha's Table", FR: "La Table de Marthe"},
			Description: models.LocalizedText{
				EN: "Low-cost hot meals served daily in a welcoming dining room.",
				FR: "Repas chauds à prix modique servis tous les jours.",
			},
			Category:     models.CategoryFood,
			Verification: models.VerificationL2,
			Synthetic: models.SyntheticQueries{
				EN: []string{"hot meal today", "cheap dinner downtown"},
				FR: []string{"repas chaud aujourd'hui"},
			},
			Location:     &models.Location{Lat: 44.2301, Lng: -76.4850},
			LastVerified: daysAgo(45),
			Hours:        weekdayHours("11:00", "18:00"),
		},
		{
			ID:       "telephone-aid-line-kingston",
			Name:     models.LocalizedText{EN: "Telephone Aid Line Kingston", FR: "Ligne d'aide téléphonique de Kingston"},
			Description: models.LocalizedText{
				EN: "Confidential peer-support and crisis listening line, open every evening.",
				FR: "Ligne d'écoute confidentielle de soutien par les pairs et de crise.",
			},
			Category:     models.CategoryCrisis,
			Verification: models.VerificationL3,
			Synthetic: models.SyntheticQueries{
				EN: []string{"i want to kill myself", "i need someone to talk to", "suicide help line"},
				FR: []string{"je veux me suicider", "j'ai besoin de parler"},
			},
			Location:     &models.Location{Lat: 44.2334, Lng: -76.4930},
			LastVerified: daysAgo(8),
			Hours: models.WeeklyHours{
				"friday":   {{Open: "18:00", Close: "02:00"}},
				"saturday": {{Open: "18:00", Close: "02:00"}},
			},
		},
		{
			ID:       "addiction-mental-health-kfla",
			Name:     models.LocalizedText{EN: "Addiction and Mental Health Services KFLA", FR: "Services de toxicomanie et de santé mentale KFLA"},
			Description: models.LocalizedText{
				EN: "Crisis intervention, counselling, and withdrawal management services.",
				FR: "Intervention en cas de crise, counseling et gestion du sevrage.",
			},
			Category:     models.CategoryCrisis,
			Verification: models.VerificationL2,
			Synthetic: models.SyntheticQueries{
				EN: []string{"overdose help", "mental health crisis", "addiction support"},
				FR: []string{"aide surdose", "crise de santé mentale"},
			},
			Location:     &models.Location{Lat: 44.2442, Lng: -76.4903},
			LastVerified: daysAgo(20),
		},
		{
			ID:       "kingston-youth-shelter",
			Name:     models.LocalizedText{EN: "Kingston Youth Shelter", FR: "Refuge pour jeunes de Kingston"},
			Description: models.LocalizedText{
				EN: "Emergency shelter and transitional housing for youth aged 16 to 24.",
				FR: "Hébergement d'urgence et logement de transition pour les jeunes de 16 à 24 ans.",
			},
			Category:     models.CategoryHousing,
			Verification: models.VerificationL3,
			IdentityTags: []string{"Youth", "2SLGBTQ+"},
			Synthetic: models.SyntheticQueries{
				EN: []string{"nowhere to sleep tonight", "homeless teen", "youth shelter"},
				FR: []string{"nulle part où dormir", "refuge pour jeunes"},
			},
			Location:     &models.Location{Lat: 44.2355, Lng: -76.4993},
			LastVerified: daysAgo(15),
		},
		{
			ID:       "home-base-housing",
			Name:     models.LocalizedText{EN: "Home Base Housing", FR: "Home Base Housing"},
			Description: models.LocalizedText{
				EN: "Supportive housing programs and adult emergency shelter beds.",
				FR: "Programmes de logement avec soutien et lits d'hébergement d'urgence pour adultes.",
			},
			Category:     models.CategoryHousing,
			Verification: models.VerificationL2,
			Synthetic: models.SyntheticQueries{
				EN: []string{"i lost my apartment", "emergency shelter bed", "affordable housing waitlist"},
				FR: []string{"j'ai perdu mon logement"},
			},
			Location:     &models.Location{Lat: 44.2389, Lng: -76.5011},
			LastVerified: daysAgo(120),
		},
		{
			ID:       "street-health-centre",
			Name:     models.LocalizedText{EN: "Street Health Centre", FR: "Centre de santé de la rue"},
			Description: models.LocalizedText{
				EN: "Drop-in primary care, harm reduction, and hepatitis treatment, no health card needed.",
				FR: "Soins primaires sans rendez-vous et réduction des méfaits, sans carte santé.",
			},
			Category:     models.CategoryHealth,
			Verification: models.VerificationL3,
			Synthetic: models.SyntheticQueries{
				EN: []string{"see a doctor without health card", "needle exchange", "walk in clinic downtown"},
				FR: []string{"voir un médecin sans carte santé"},
			},
			Location:     &models.Location{Lat: 44.2327, Lng: -76.4891},
			LastVerified: daysAgo(25),
			Hours:        weekdayHours("08:30", "16:30"),
		},
		{
			ID:       "kingston-community-legal-clinic",
			Name:     models.LocalizedText{EN: "Kingston Community Legal Clinic", FR: "Clinique juridique communautaire de Kingston"},
			Description: models.LocalizedText{
				EN: "Free legal advice for tenants, income support appeals, and workers' rights.",
				FR: "Conseils juridiques gratuits pour les locataires et les appels d'aide au revenu.",
			},
			Category:     models.CategoryLegal,
			Verification: models.VerificationL2,
			Synthetic: models.SyntheticQueries{
				EN: []string{"my landlord is evicting me", "free lawyer", "denied disability benefits"},
				FR: []string{"mon propriétaire m'expulse", "avocat gratuit"},
			},
			Location:     &models.Location{Lat: 44.2318, Lng: -76.4862},
			LastVerified: daysAgo(60),
			Hours:        weekdayHours("09:00", "17:00"),
		},
		{
			ID:       "keys-employment-services",
			Name:     models.LocalizedText{EN: "KEYS Employment Services", FR: "Services d'emploi KEYS"},
			Description: models.LocalizedText{
				EN: "Job search coaching, resume help, and newcomer employment programs.",
				FR: "Accompagnement à la recherche d'emploi et programmes pour nouveaux arrivants.",
			},
			Category:     models.CategoryEmployment,
			Verification: models.VerificationL2,
			IdentityTags: []string{"Newcomers", "Youth"},
			Synthetic: models.SyntheticQueries{
				EN: []string{"help finding a job", "fix my resume"},
				FR: []string{"aide pour trouver un emploi"},
			},
			Location:     &models.Location{Lat: 44.2369, Lng: -76.4958},
			LastVerified: daysAgo(40),
			Hours:        weekdayHours("08:30", "16:30"),
		},
		{
			ID:       "katarokwi-indigenous-friendship-centre",
			Name:     models.LocalizedText{EN: "Katarokwi Indigenous Friendship Centre", FR: "Centre d'amitié autochtone Katarokwi"},
			Description: models.LocalizedText{
				EN: "Cultural programs, healing circles, and wraparound supports for Indigenous community members.",
				FR: "Programmes culturels et soutiens globaux pour les membres des communautés autochtones.",
			},
			Category:     models.CategoryIndigenous,
			Verification: models.VerificationL3,
			IdentityTags: []string{"Indigenous", "Families", "Youth"},
			Synthetic: models.SyntheticQueries{
				EN: []string{"indigenous community support", "healing circle", "metis and inuit services"},
				FR: []string{"soutien communautaire autochtone"},
			},
			Location:     &models.Location{Lat: 44.2406, Lng: -76.4815},
			LastVerified: daysAgo(18),
		},
		{
			ID:       "kingston-transit-affordable-pass",
			Name:     models.LocalizedText{EN: "Kingston Transit Affordable Pass", FR: "Laissez-passer abordable de Kingston Transit"},
			Description: models.LocalizedText{
				EN: "Reduced-fare bus passes for low-income riders.",
				FR: "Laissez-passer d'autobus à tarif réduit pour les personnes à faible revenu.",
			},
			Category:     models.CategoryTransport,
			Verification: models.VerificationL1,
			Synthetic: models.SyntheticQueries{
				EN: []string{"cheap bus pass", "cannot afford the bus"},
				FR: []string{"autobus pas cher"},
			},
			Location:     &models.Location{Lat: 44.2312, Lng: -76.4860},
			LastVerified: daysAgo(200),
		},
		{
			// Administrative placeholder awaiting first verification; never
			// surfaced in search results.
			ID:       "unverified-wellness-collective",
			Name:     models.LocalizedText{EN: "Kingston Wellness Collective", FR: "Collectif bien-être de Kingston"},
			Description: models.LocalizedText{
				EN: "Peer wellness programming, food events, and community workshops.",
				FR: "Programmes de bien-être par les pairs et ateliers communautaires.",
			},
			Category:     models.CategoryWellness,
			Verification: models.VerificationL0,
			Synthetic: models.SyntheticQueries{
				EN: []string{"wellness workshop", "free community food event"},
			},
			Location: &models.Location{Lat: 44.2288, Lng: -76.4812},
		},
	}
}

// Seed writes the built-in directory into store. Existing rows with the same
// IDs are replaced.
func Seed(ctx context.Context, store ServiceStore) (int, error) {
	services := SeedServices()
	for _, svc := range services {
		if err := store.PutService(ctx, svc); err != nil {
			return 0, err
		}
	}
	return len(services), nil
}
