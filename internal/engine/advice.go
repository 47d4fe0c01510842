package engine

// adviceScript is one canned block of guidance text.
type adviceScript struct {
	recommendations []string
	nextSteps       []string
	whenToSeekHelp  []string
	preventionTips  []string
}

var baseScripts = map[TriageLevel]adviceScript{
	LevelSelfCare: {
		recommendations: []string{
			"Rest and stay hydrated.",
			"Use over-the-counter remedies as directed for symptom relief.",
			"Monitor your symptoms for any changes.",
		},
		nextSteps: []string{
			"Keep a simple symptom diary for the next few days.",
			"Contact your doctor if symptoms last longer than a week.",
		},
		whenToSeekHelp: []string{
			"Symptoms worsen or new symptoms appear.",
			"Symptoms have not improved after 7 days.",
			"You develop a high fever or difficulty breathing.",
		},
		preventionTips: []string{
			"Wash your hands regularly.",
			"Get adequate sleep and maintain a balanced diet.",
			"Stay up to date with recommended vaccinations.",
		},
	},
	LevelRoutine: {
		recommendations: []string{
			"Schedule an appointment with your primary care provider.",
			"Rest and avoid strenuous activity until you have been seen.",
			"Note when each symptom started and how it has changed.",
		},
		nextSteps: []string{
			"Book a doctor's appointment within the next few days.",
			"Prepare a list of your symptoms, medications, and questions.",
		},
		whenToSeekHelp: []string{
			"Symptoms become significantly worse before your appointment.",
			"You develop chest pain, difficulty breathing, or confusion.",
			"Pain becomes severe or unmanageable.",
		},
		preventionTips: []string{
			"Attend regular check-ups with your doctor.",
			"Stay physically active and eat a balanced diet.",
		},
	},
	LevelUrgent: {
		recommendations: []string{
			"Seek medical care within the next 24 hours.",
			"Visit an urgent care clinic or same-day appointment service.",
			"Do not ignore worsening symptoms while you wait.",
		},
		nextSteps: []string{
			"Arrange to be seen today or tomorrow at the latest.",
			"Bring a list of your current medications with you.",
			"Have someone accompany you if you feel weak or dizzy.",
		},
		whenToSeekHelp: []string{
			"Symptoms escalate rapidly or severe pain develops.",
			"You experience chest pain, difficulty breathing, or fainting.",
			"Go to the emergency department if you cannot be seen within 24 hours.",
		},
		preventionTips: []string{
			"Follow up with your regular doctor after this episode.",
		},
	},
	LevelEmergency: {
		recommendations: []string{
			"Call emergency services (911) immediately.",
			"Do not drive yourself to the hospital.",
			"Stay calm and remain where you are until help arrives.",
			"If prescribed, take emergency medication (such as nitroglycerin or an epinephrine auto-injector).",
		},
		nextSteps: []string{
			"Unlock your door and, if possible, have someone wait with you.",
			"Gather a list of your medications and allergies for responders.",
		},
		whenToSeekHelp: []string{
			"You need help now. Call emergency services without delay.",
		},
		preventionTips: []string{
			"After recovery, discuss warning signs and a prevention plan with your doctor.",
		},
	},
}

var respiratorySupplement = adviceScript{
	recommendations: []string{
		"Isolate from others until an infectious cause such as COVID-19 is ruled out.",
		"Take a COVID-19 test if one is available.",
		"Wear a mask around other people.",
	},
	whenToSeekHelp: []string{
		"Breathing becomes difficult or painful.",
		"Lips or face take on a bluish color.",
	},
}

var allergySupplement = adviceScript{
	recommendations: []string{
		"Avoid known or suspected allergens where possible.",
		"Consider an over-the-counter antihistamine for relief.",
	},
	preventionTips: []string{
		"Keep windows closed during high pollen periods.",
		"Wash bedding regularly in hot water to reduce dust mites.",
	},
}

var mentalHealthSupplement = adviceScript{
	recommendations: []string{
		"Talk to someone you trust about how you are feeling.",
		"Consider reaching out to a mental health professional.",
	},
	whenToSeekHelp: []string{
		"You have thoughts of harming yourself or others - contact a crisis line immediately (call or text 988 in the US).",
	},
}

// advise fills the four guidance lists on the result: the base script for the
// triage level, then any supplemental blocks triggered by the reported
// symptom set. Supplements are append-only and each fires at most once.
func (e *Engine) advise(res *Result) {
	script := baseScripts[res.Triage.Level]
	res.Recommendations = append([]string(nil), script.recommendations...)
	res.NextSteps = append([]string(nil), script.nextSteps...)
	res.WhenToSeekHelp = append([]string(nil), script.whenToSeekHelp...)
	res.PreventionTips = append([]string(nil), script.preventionTips...)

	if intersects(res.Report.Symptoms, e.cat.RespiratoryKeywords) {
		appendScript(res, respiratorySupplement)
	}
	if intersects(res.Report.Symptoms, e.cat.AllergyKeywords) {
		appendScript(res, allergySupplement)
	}
	if intersects(res.Report.Symptoms, e.cat.MentalHealthKeywords) {
		appendScript(res, mentalHealthSupplement)
	}
}

func appendScript(res *Result, s adviceScript) {
	res.Recommendations = append(res.Recommendations, s.recommendations...)
	res.NextSteps = append(res.NextSteps, s.nextSteps...)
	res.WhenToSeekHelp = append(res.WhenToSeekHelp, s.whenToSeekHelp...)
	res.PreventionTips = append(res.PreventionTips, s.preventionTips...)
}

func intersects(tokens, keywords []string) bool {
	for _, tok := range tokens {
		for _, kw := range keywords {
			if tok == kw {
				return true
			}
		}
	}
	return false
}
