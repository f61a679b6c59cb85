package serializer

import "superheroes/models"

// Hero serializes h. The default fields are id, name, super_name and
// hero_powers, the latter holding each association in minimal form.
func Hero(h *models.Hero, fields ...string) Record {
	return build([]column{
		{"id", func() any { return h.ID }},
		{"name", func() any { return h.Name }},
		{"super_name", func() any { return h.SuperName }},
		{"hero_powers", func() any {
			out := make([]Record, 0, len(h.HeroPowers))
			for i := range h.HeroPowers {
				out = append(out, HeroPowerMinimal(&h.HeroPowers[i]))
			}
			return out
		}},
	}, fields)
}

func Heroes(heroes []models.Hero, fields ...string) []Record {
	out := make([]Record, 0, len(heroes))
	for i := range heroes {
		out = append(out, Hero(&heroes[i], fields...))
	}
	return out
}

// Power serializes p with the default fields id, name and description.
func Power(p *models.Power, fields ...string) Record {
	return build([]column{
		{"id", func() any { return p.ID }},
		{"name", func() any { return p.Name }},
		{"description", func() any { return p.Description }},
	}, fields)
}

func Powers(powers []models.Power, fields ...string) []Record {
	out := make([]Record, 0, len(powers))
	for i := range powers {
		out = append(out, Power(&powers[i], fields...))
	}
	return out
}

// HeroPower serializes hp in full form: the association columns followed by
// the full hero and power. The nested hero lists its associations in minimal
// form, so the output is at most two levels deep. A relation that was not
// loaded is emitted as null.
func HeroPower(hp *models.HeroPower, fields ...string) Record {
	return build([]column{
		{"id", func() any { return hp.ID }},
		{"strength", func() any { return string(hp.Strength) }},
		{"hero_id", func() any { return hp.HeroID }},
		{"power_id", func() any { return hp.PowerID }},
		{"hero", func() any {
			if hp.Hero == nil {
				return nil
			}
			return Hero(hp.Hero)
		}},
		{"power", func() any {
			if hp.Power == nil {
				return nil
			}
			return Power(hp.Power)
		}},
	}, fields)
}

func HeroPowers(hps []models.HeroPower, fields ...string) []Record {
	out := make([]Record, 0, len(hps))
	for i := range hps {
		out = append(out, HeroPower(&hps[i], fields...))
	}
	return out
}

// HeroPowerMinimal serializes hp without its related entities.
func HeroPowerMinimal(hp *models.HeroPower) Record {
	return HeroPower(hp, "id", "strength", "hero_id", "power_id")
}
