package domain

import "github.com/shopspring/decimal"

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// DefaultBodyParts seeds the minor-injury category table.
func DefaultBodyParts() []BodyPartCategory {
	return []BodyPartCategory{
		{
			ID:    "none",
			Label: LocalizedText{EN: "No Injury", ES: "Sin Lesiones"},
			Description: LocalizedText{
				EN: "Claims strictly for property damage to your vehicle or assets with no reported bodily harm.",
				ES: "Reclamos estrictamente por daños a la propiedad sin daño corporal.",
			},
			Boost: dec(0.0),
		},
		{
			ID:    "sprains",
			Label: LocalizedText{EN: "Sprains & Strains", ES: "Esguinces y Distensiones"},
			Description: LocalizedText{
				EN: "Represents: ligament sprains (ankle, knee, wrist) and muscle or tendon strains (neck, back, shoulder, hamstring). Typical “pulled muscle,” “whiplash-type strain,” mild tear or overstretch without fracture.",
				ES: "Representa: esguinces de ligamentos y distensiones musculares. El típico \"músculo tirado\" sin fractura.",
			},
			Boost: dec(1.1),
		},
		{
			ID:    "scrapes",
			Label: LocalizedText{EN: "Scrapes & Scratches", ES: "Raspaduras y Arañazos"},
			Description: LocalizedText{
				EN: "Represents: superficial skin injuries, including abrasions (road rash), minor cuts/lacerations that usually do not require significant repair, and shallow punctures with routine wound care. Primary issue is skin damage, not deep tissue.",
				ES: "Representa: lesiones cutáneas superficiales, incluyendo raspaduras, cortes menores y pinchazos superficiales.",
			},
			Boost: dec(0.8),
		},
		{
			ID:    "swelling",
			Label: LocalizedText{EN: "Swelling & Soreness", ES: "Hinchazón y Dolor"},
			Description: LocalizedText{
				EN: "Represents: contusions (bruising), localized inflammation, tenderness, stiffness, and minor aggravations of joints or soft tissue that do not clearly fit a sprain/strain. Often documented as “contusion,” “soft-tissue injury,” “inflammation,” “bursitis/tendonitis,” or “general soreness” with limited range of motion.",
				ES: "Representa: contusiones (moretones), inflamación localizada, rigidez y dolor de los tejidos blandos.",
			},
			Boost: dec(0.9),
		},
	}
}

// DefaultConductTypes seeds the minor-injury conduct table. This scale
// (2.5/4.0/4.8) is tuned independently of the serious and wrongful-death
// liability tables below.
func DefaultConductTypes() []ConductType {
	return []ConductType{
		{
			ID:    "standard",
			Label: LocalizedText{EN: "Ordinary Negligence", ES: "Negligencia Ordinaria"},
			Description: LocalizedText{
				EN: "The most common standard; it means the person failed to use reasonable care that an ordinary person would have used.",
				ES: "El estándar más común; significa que la persona no utilizó el cuidado razonable que habría utilizado una persona común.",
			},
			Multiplier: dec(2.5),
		},
		{
			ID:    "gross",
			Label: LocalizedText{EN: "Gross Negligence", ES: "Negligencia Grave"},
			Description: LocalizedText{
				EN: "A higher level of fault where the person showed an extreme lack of care or a conscious indifference to the safety of others.",
				ES: "Un mayor nivel de culpa en el que la persona mostró una falta extrema de cuidado o una indiferencia consciente hacia la seguridad de los demás.",
			},
			Multiplier: dec(4.0),
		},
		{
			ID:    "intentional",
			Label: LocalizedText{EN: "Intentional Conduct", ES: "Conducta Intencional"},
			Description: LocalizedText{
				EN: "Deliberate and willful actions where the party specifically intended to cause harm or knew injury was likely to occur.",
				ES: "Acciones deliberadas y voluntarias en las que la parte tenía la intención específica de causar daño o sabía que era probable que se produjera una lesión.",
			},
			Multiplier: dec(4.8),
		},
	}
}

// DefaultStandardConfig seeds the minor-injury calculator configuration.
func DefaultStandardConfig() StandardCalculatorConfig {
	return StandardCalculatorConfig{
		BodyParts:    DefaultBodyParts(),
		ConductTypes: DefaultConductTypes(),
	}
}

// SeriousLiabilityLevels is the conduct scale for the serious-injury
// calculator (1.0/1.5/2.0).
func SeriousLiabilityLevels() []LiabilityLevel {
	return []LiabilityLevel{
		{ID: "standard", Label: "Ordinary Negligence", Multiplier: dec(1.0),
			Desc: "The most common standard; it means the person failed to use reasonable care that an ordinary person would have used."},
		{ID: "gross", Label: "Gross Negligence", Multiplier: dec(1.5),
			Desc: "A higher level of fault where the person showed an extreme lack of care or a conscious indifference to the safety of others."},
		{ID: "intentional", Label: "Intentional Misconduct", Multiplier: dec(2.0),
			Desc: "Deliberate and willful actions where the party specifically intended to cause harm or knew injury was likely to occur."},
	}
}

// DeathLiabilityLevels is the conduct scale for both wrongful-death
// calculators (1.0/1.5/2.0). Same numbers as the serious scale today, but
// kept as a separate table so each funnel can be tuned on its own.
func DeathLiabilityLevels() []LiabilityLevel {
	return []LiabilityLevel{
		{ID: "standard", Label: "Ordinary Negligence", Multiplier: dec(1.0), Desc: "Failure to use ordinary care."},
		{ID: "gross", Label: "Gross Negligence", Multiplier: dec(1.5), Desc: "Extreme risk/conscious indifference."},
		{ID: "intentional", Label: "Intentional Conduct", Multiplier: dec(2.0), Desc: "Specific intent to cause harm."},
	}
}

// NonEconFactorCatalog is the fixed six-item catalog of non-economic damage
// factors for the serious-injury calculator.
func NonEconFactorCatalog() []NonEconFactor {
	return []NonEconFactor{
		{ID: "pain", Label: "Pain and Suffering"},
		{ID: "quality", Label: "Diminished Quality of Life"},
		{ID: "disfigure", Label: "Permanent Disfigurement"},
		{ID: "impair", Label: "Physical Impairment"},
		{ID: "consort", Label: "Loss of Consortium"},
		{ID: "distress", Label: "Mental / Emotional Distress"},
	}
}

// DefaultSeriousConfig seeds the serious-injury catalog: eight injury types,
// three severity tiers each.
func DefaultSeriousConfig() SeriousCalculatorConfig {
	return SeriousCalculatorConfig{
		Injuries: []SeriousInjuryType{
			{
				ID:      "tbi",
				Label:   "Traumatic Brain (TBI)",
				Summary: "Neurological impairment resulting from external force.",
				Tiers: []SeriousTier{
					{Label: "Mild", EDFloor: dec(150000), MinWeight: dec(2.0), Desc: "Mild Traumatic Brain Injury involving concussion, post-concussive syndrome, and temporary cognitive disruption."},
					{Label: "Moderate", EDFloor: dec(500000), MinWeight: dec(4.0), Desc: "Moderate Traumatic Brain Injury with documented loss of consciousness, persistent cognitive deficits, and personality alterations."},
					{Label: "Severe", EDFloor: dec(1500000), MinWeight: dec(7.0), Desc: "Catastrophic Traumatic Brain Injury resulting in permanent cognitive impairment, motor dysfunction, or persistent vegetative state."},
				},
			},
			{
				ID:      "spinal",
				Label:   "Spinal Cord Injury",
				Summary: "Damage to the spinal cord or nerves.",
				Tiers: []SeriousTier{
					{Label: "Herniation", EDFloor: dec(75000), MinWeight: dec(1.5), Desc: "Lumbar or Cervical disc herniation requiring surgical intervention such as a single-level fusion or laminectomy."},
					{Label: "Partial Paralysis", EDFloor: dec(800000), MinWeight: dec(5.0), Desc: "Significant spinal cord damage resulting in loss of sensation or motor control in specific extremities (Paraparesis)."},
					{Label: "Quadriplegia", EDFloor: dec(4000000), MinWeight: dec(10.0), Desc: "Total and permanent loss of function in all four limbs and torso resulting from high-level cervical spinal cord injury."},
				},
			},
			{
				ID:      "fracture",
				Label:   "Severe Fractures",
				Summary: "Complex bone breaks requiring surgical intervention.",
				Tiers: []SeriousTier{
					{Label: "Compound", EDFloor: dec(50000), MinWeight: dec(1.2), Desc: "Open fracture where the bone pierces the skin, requiring emergency surgical stabilization and risk of office-wide osteomyelitis."},
					{Label: "Comminuted", EDFloor: dec(120000), MinWeight: dec(2.0), Desc: "Complex fracture where the bone is splintered or crushed into multiple fragments requiring extensive internal fixation."},
					{Label: "Pelvic/Hip", EDFloor: dec(250000), MinWeight: dec(3.5), Desc: "Catastrophic fracture of the pelvic girdle or femoral neck resulting in permanent mobility impairment and chronic pain."},
				},
			},
			{
				ID:      "burns",
				Label:   "Severe Burns",
				Summary: "Thermal or chemical damage to skin and tissue.",
				Tiers: []SeriousTier{
					{Label: "2nd Degree", EDFloor: dec(40000), MinWeight: dec(1.5), Desc: "Partial thickness burns involving the epidermis and dermis, causing significant pain and potential for localized scarring."},
					{Label: "3rd Degree", EDFloor: dec(200000), MinWeight: dec(4.5), Desc: "Full thickness burns extending through all skin layers, requiring surgical debridement and extensive skin grafting procedures."},
					{Label: "Catastrophic", EDFloor: dec(1000000), MinWeight: dec(8.0), Desc: "Fourth-degree burns involving underlying muscle and bone, resulting in massive disfigurement or systemic organ failure."},
				},
			},
			{
				ID:      "back",
				Label:   "Back & Neck",
				Summary: "Soft tissue and disc injuries of the spinal column.",
				Tiers: []SeriousTier{
					{Label: "Strain/Sprain", EDFloor: dec(15000), MinWeight: dec(1.0), Desc: "Chronic myofascial pain syndrome and ligamentous instability resulting in persistent loss of range of motion."},
					{Label: "Disc Bulge", EDFloor: dec(45000), MinWeight: dec(1.8), Desc: "Bulging intervertebral discs with nerve root impingement requiring long-term epidural steroid injections or physical therapy."},
					{Label: "Disc Herniation", EDFloor: dec(95000), MinWeight: dec(2.5), Desc: "Extrusion of disc material causing severe radiculopathy and requiring microdiscectomy or surgical laminectomy."},
				},
			},
			{
				ID:      "amputation",
				Label:   "Amputations",
				Summary: "Loss of a body part due to traumatic impact.",
				Tiers: []SeriousTier{
					{Label: "Digit/Toe", EDFloor: dec(75000), MinWeight: dec(2.0), Desc: "Traumatic loss of a finger or toe resulting in diminished grip strength or permanent balance disruption."},
					{Label: "Partial Limb", EDFloor: dec(350000), MinWeight: dec(4.5), Desc: "Traumatic loss of a hand or foot (transmetatarsal or transcarpal) requiring specialized prosthetic adaptation."},
					{Label: "Full Limb", EDFloor: dec(1200000), MinWeight: dec(8.5), Desc: "Catastrophic loss of an arm or leg (above or below knee/elbow) requiring lifelong prosthetic maintenance and therapy."},
				},
			},
			{
				ID:      "blindness",
				Label:   "Vision Impairment",
				Summary: "Partial or total loss of sight.",
				Tiers: []SeriousTier{
					{Label: "Partial", EDFloor: dec(100000), MinWeight: dec(2.5), Desc: "Significant loss of visual acuity or field of vision in one or both eyes, affecting daily activities and ability to drive."},
					{Label: "Single Eye", EDFloor: dec(450000), MinWeight: dec(5.0), Desc: "Complete and irreversible loss of sight in one eye (Enucleation or total retinal detachment)."},
					{Label: "Total", EDFloor: dec(2000000), MinWeight: dec(9.5), Desc: "Bilateral total blindness resulting in complete permanent disability and loss of independent living capacity."},
				},
			},
			{
				ID:      "internal",
				Label:   "Internal Trauma",
				Summary: "Damage to internal organs or high-velocity trauma.",
				Tiers: []SeriousTier{
					{Label: "Splenectomy", EDFloor: dec(85000), MinWeight: dec(1.8), Desc: "Ruptured spleen requiring emergency surgical removal and resulting in lifelong immune system compromise."},
					{Label: "Organ Laceration", EDFloor: dec(150000), MinWeight: dec(3.0), Desc: "Significant laceration or bruising to the liver, kidneys, or lungs requiring intensive care monitoring or major surgery."},
					{Label: "Multi-System", EDFloor: dec(650000), MinWeight: dec(6.0), Desc: "Critical trauma to multiple internal organ systems resulting in septic risk, internal hemorrhage, or multi-organ failure."},
				},
			},
		},
	}
}

// DefaultDeathConfig seeds the wrongful-death tuning parameters.
func DefaultDeathConfig() WrongfulDeathConfig {
	return WrongfulDeathConfig{PecuniaryFloor: dec(1000000)}
}
