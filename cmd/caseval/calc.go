package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gregglawdallas/caseval/internal/domain"
	"github.com/gregglawdallas/caseval/internal/intake"
	"github.com/gregglawdallas/caseval/internal/output"
	"github.com/gregglawdallas/caseval/internal/store"
	"github.com/gregglawdallas/caseval/internal/valuation"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run a settlement calculator",
}

// Shared calc flags.
var (
	calcFormat string
	calcUnlock bool
	calcName   string
	calcPhone  string
	calcAgree  bool
)

func init() {
	calcCmd.PersistentFlags().StringVar(&calcFormat, "format", "console", "output format: console or json")
	calcCmd.PersistentFlags().BoolVar(&calcUnlock, "unlock", false, "reveal figures and capture a lead")
	calcCmd.PersistentFlags().StringVar(&calcName, "name", "", "prospect name (required with --unlock)")
	calcCmd.PersistentFlags().StringVar(&calcPhone, "phone", "", "prospect phone (required with --unlock)")
	calcCmd.PersistentFlags().BoolVar(&calcAgree, "agree", false, "acknowledge the disclosure (required with --unlock)")

	calcCmd.AddCommand(calcMinorCmd)
	calcCmd.AddCommand(calcSeriousCmd)
	calcCmd.AddCommand(calcEstateCmd)
	calcCmd.AddCommand(calcBeneficiaryCmd)
	rootCmd.AddCommand(calcCmd)
}

// captureLead runs the unlock gate when --unlock is set. It returns whether
// figures may be revealed.
func captureLead(cmd *cobra.Command, st store.Store, lead domain.CalculatorLead) (bool, error) {
	if !calcUnlock {
		return false, nil
	}
	sess := intake.NewSession(st, zap.L())
	saved, err := sess.Unlock(cmd.Context(), intake.Contact{Name: calcName, Phone: calcPhone, Agreed: calcAgree}, lead)
	if err != nil {
		return false, err
	}
	if saved != nil && calcFormat == "console" {
		fmt.Fprintf(os.Stdout, "Lead captured: %s\n\n", saved.ID)
	}
	return true, nil
}

func renderEstimate(report string, unlocked bool, jsonPayload any) error {
	if calcFormat == "json" {
		if !unlocked {
			return eris.New("json output requires --unlock")
		}
		return printJSON(jsonPayload)
	}
	fmt.Fprint(os.Stdout, report)
	if !unlocked {
		fmt.Fprintln(os.Stdout, "\nFigures are locked. Re-run with --unlock --name --phone --agree to reveal them.")
	}
	return nil
}

var (
	minorBodyPart string
	minorConduct  string
	minorMedical  float64
	minorWages    float64
	minorFuture   float64
	minorPocket   float64
	minorProperty float64
	minorFault    int
)

var calcMinorCmd = &cobra.Command{
	Use:   "minor",
	Short: "Minor-injury settlement estimate",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(domain.ValidFaultPercents, minorFault) {
			return eris.Errorf("fault must be one of %v", domain.ValidFaultPercents)
		}

		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		calcCfg, err := st.GetStandardConfig(cmd.Context())
		if err != nil {
			return err
		}

		input := domain.MinorCaseInput{
			BodyPartID:     minorBodyPart,
			ConductID:      minorConduct,
			MedicalBills:   money(minorMedical),
			LostWages:      money(minorWages),
			FutureMedical:  money(minorFuture),
			OutOfPocket:    money(minorPocket),
			PropertyDamage: money(minorProperty),
			FaultPercent:   minorFault,
		}
		est, err := valuation.ComputeMinor(input, calcCfg)
		if err != nil {
			return err
		}

		unlocked, err := captureLead(cmd, st, intake.BuildMinorLead(input, calcCfg, est))
		if err != nil {
			return err
		}

		rg := &output.ReportGenerator{Locked: !unlocked}
		return renderEstimate(rg.MinorReport(input, est), unlocked, struct {
			Input    domain.MinorCaseInput `json:"input"`
			Estimate domain.MinorEstimate  `json:"estimate"`
		}{input, est})
	},
}

func init() {
	f := calcMinorCmd.Flags()
	f.StringVar(&minorBodyPart, "body-part", "sprains", "injury category id (none for property-only)")
	f.StringVar(&minorConduct, "conduct", "standard", "defendant conduct id")
	f.Float64Var(&minorMedical, "medical-bills", 0, "medical bills to date")
	f.Float64Var(&minorWages, "lost-wages", 0, "lost wages / income")
	f.Float64Var(&minorFuture, "future-medical", 0, "future medical expenses")
	f.Float64Var(&minorPocket, "out-of-pocket", 0, "out-of-pocket expenses")
	f.Float64Var(&minorProperty, "property-damage", 0, "property damage (none branch)")
	f.IntVar(&minorFault, "fault", 0, "comparative fault percent (0-50, steps of 10)")
}

var (
	seriousInjury  string
	seriousTier    int
	seriousConduct string
	seriousMedical float64
	seriousFuture  float64
	seriousWages   float64
	seriousPocket  float64
	seriousFault   int
	seriousFactors []string
)

var calcSeriousCmd = &cobra.Command{
	Use:   "serious",
	Short: "Serious-injury settlement estimate",
	RunE: func(cmd *cobra.Command, args []string) error {
		if seriousFault < 0 || seriousFault > 99 {
			return eris.New("fault must be a percentage below 100")
		}

		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		calcCfg, err := st.GetSeriousConfig(cmd.Context())
		if err != nil {
			return err
		}

		input := domain.SeriousCaseInput{
			InjuryTypeID:    seriousInjury,
			ConductID:       seriousConduct,
			MedicalBills:    money(seriousMedical),
			FutureMedical:   money(seriousFuture),
			LostWages:       money(seriousWages),
			OutOfPocket:     money(seriousPocket),
			FaultFraction:   decimal.NewFromInt(int64(seriousFault)).Div(decimal.NewFromInt(100)),
			SelectedFactors: seriousFactors,
		}
		if seriousTier >= 0 {
			input.TierIndex = &seriousTier
		}

		est, err := valuation.ComputeSerious(input, calcCfg)
		if err != nil {
			return err
		}

		unlocked, err := captureLead(cmd, st, intake.BuildSeriousLead(input, calcCfg, est))
		if err != nil {
			return err
		}

		rg := &output.ReportGenerator{Locked: !unlocked}
		return renderEstimate(rg.SeriousReport(input, est), unlocked, struct {
			Input    domain.SeriousCaseInput `json:"input"`
			Estimate domain.SeriousEstimate  `json:"estimate"`
		}{input, est})
	},
}

func init() {
	f := calcSeriousCmd.Flags()
	f.StringVar(&seriousInjury, "injury", "tbi", "injury type id")
	f.IntVar(&seriousTier, "tier", -1, "severity tier index (0-2, -1 for unassessed)")
	f.StringVar(&seriousConduct, "conduct", "standard", "liability level id")
	f.Float64Var(&seriousMedical, "medical-bills", 0, "current medical expenses")
	f.Float64Var(&seriousFuture, "future-medical", 0, "future medical / care plan")
	f.Float64Var(&seriousWages, "lost-wages", 0, "lost earnings")
	f.Float64Var(&seriousPocket, "out-of-pocket", 0, "out-of-pocket expenses")
	f.IntVar(&seriousFault, "fault", 0, "comparative fault percent")
	f.StringSliceVar(&seriousFactors, "factors", nil, "non-economic factor ids (pain,quality,disfigure,impair,consort,distress)")
}

var (
	estateEarnings   float64
	estateSuffering  float64
	estateImpairment float64
	estateFuneral    float64
	estateConduct    string
	estateFault      int
)

var calcEstateCmd = &cobra.Command{
	Use:   "estate",
	Short: "Wrongful-death estate (survival action) valuation",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		input := domain.EstateCaseInput{
			FutureEarnings:     money(estateEarnings),
			PainAndSuffering:   money(estateSuffering),
			PhysicalImpairment: money(estateImpairment),
			MedicalFuneral:     money(estateFuneral),
			ConductID:          estateConduct,
			FaultFraction:      decimal.NewFromInt(int64(estateFault)).Div(decimal.NewFromInt(100)),
		}
		est, err := valuation.ComputeEstate(input)
		if err != nil {
			return err
		}

		unlocked, err := captureLead(cmd, st, intake.BuildEstateLead(input, est))
		if err != nil {
			return err
		}

		rg := &output.ReportGenerator{Locked: !unlocked}
		return renderEstimate(rg.DeathReport("ESTATE SURVIVAL ACTION", est), unlocked, struct {
			Input    domain.EstateCaseInput `json:"input"`
			Estimate domain.DeathEstimate   `json:"estimate"`
		}{input, est})
	},
}

func init() {
	f := calcEstateCmd.Flags()
	f.Float64Var(&estateEarnings, "future-earnings", 0, "lost future earnings of the estate")
	f.Float64Var(&estateSuffering, "pain-suffering", 0, "pre-death pain and suffering")
	f.Float64Var(&estateImpairment, "impairment", 0, "pre-death physical impairment")
	f.Float64Var(&estateFuneral, "medical-funeral", 0, "medical and funeral expenses")
	f.StringVar(&estateConduct, "conduct", "standard", "liability level id")
	f.IntVar(&estateFault, "fault", 0, "decedent comparative fault percent")
}

var (
	benSupport  float64
	benServices float64
	benConsort  float64
	benAnguish  float64
	benMinor    bool
	benConduct  string
	benFault    int
)

var calcBeneficiaryCmd = &cobra.Command{
	Use:   "beneficiary",
	Short: "Wrongful-death beneficiary valuation",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		input := domain.BeneficiaryCaseInput{
			FinancialSupport:   money(benSupport),
			HouseholdServices:  money(benServices),
			Consortium:         money(benConsort),
			Anguish:            money(benAnguish),
			IsMinorBeneficiary: benMinor,
			ConductID:          benConduct,
			FaultFraction:      decimal.NewFromInt(int64(benFault)).Div(decimal.NewFromInt(100)),
		}
		est, err := valuation.ComputeBeneficiary(input)
		if err != nil {
			return err
		}

		unlocked, err := captureLead(cmd, st, intake.BuildBeneficiaryLead(input, est))
		if err != nil {
			return err
		}

		rg := &output.ReportGenerator{Locked: !unlocked}
		return renderEstimate(rg.DeathReport("WRONGFUL DEATH BENEFICIARY", est), unlocked, struct {
			Input    domain.BeneficiaryCaseInput `json:"input"`
			Estimate domain.DeathEstimate        `json:"estimate"`
		}{input, est})
	},
}

func init() {
	f := calcBeneficiaryCmd.Flags()
	f.Float64Var(&benSupport, "financial-support", 0, "lost financial support")
	f.Float64Var(&benServices, "household-services", 0, "lost household services")
	f.Float64Var(&benConsort, "consortium", 0, "loss of consortium")
	f.Float64Var(&benAnguish, "anguish", 0, "mental anguish")
	f.BoolVar(&benMinor, "minor-child", false, "beneficiary is a minor child")
	f.StringVar(&benConduct, "conduct", "standard", "liability level id")
	f.IntVar(&benFault, "fault", 0, "decedent comparative fault percent")
}
