package catalog

// Default returns the built-in reference table. The data is intentionally
// small and illustrative; deployments can replace it with LoadFile.
func Default() *Catalog {
	return &Catalog{
		Conditions: []Condition{
			{
				Name:        "Common Cold",
				Symptoms:    []string{"runny nose", "sore throat", "cough", "sneezing", "congestion", "mild fever"},
				BaseWeight:  60,
				Severity:    SeverityLow,
				Description: "A viral infection of the nose and throat. Usually harmless and resolves within a week or two.",
			},
			{
				Name:        "Influenza",
				Symptoms:    []string{"fever", "cough", "sore throat", "body aches", "chills", "fatigue", "headache"},
				BaseWeight:  45,
				Severity:    SeverityModerate,
				Description: "A contagious respiratory illness caused by influenza viruses. Symptoms come on suddenly.",
			},
			{
				Name:        "COVID-19",
				Symptoms:    []string{"fever", "dry cough", "fatigue", "loss of taste", "loss of smell", "sore throat", "difficulty breathing"},
				BaseWeight:  40,
				Severity:    SeverityModerate,
				Description: "A respiratory illness caused by the SARS-CoV-2 virus.",
				Warning:     "Isolate from others and take a test if one is available.",
			},
			{
				Name:        "Allergic Rhinitis",
				Symptoms:    []string{"sneezing", "runny nose", "itchy eyes", "watery eyes", "congestion"},
				BaseWeight:  50,
				Severity:    SeverityLow,
				Description: "An allergic response to airborne allergens such as pollen, dust mites, or pet dander.",
			},
			{
				Name:        "Sinusitis",
				Symptoms:    []string{"facial pain", "congestion", "headache", "runny nose", "pressure around eyes"},
				BaseWeight:  35,
				Severity:    SeverityLow,
				Description: "Inflammation of the sinuses, often following a cold.",
			},
			{
				Name:        "Strep Throat",
				Symptoms:    []string{"sore throat", "painful swallowing", "fever", "swollen lymph nodes"},
				BaseWeight:  30,
				Severity:    SeverityModerate,
				Description: "A bacterial throat infection that typically needs antibiotic treatment.",
			},
			{
				Name:        "Bronchitis",
				Symptoms:    []string{"cough", "mucus production", "chest discomfort", "mild fever", "fatigue"},
				BaseWeight:  30,
				Severity:    SeverityModerate,
				Description: "Inflammation of the bronchial tubes, usually viral.",
			},
			{
				Name:        "Pneumonia",
				Symptoms:    []string{"high fever", "chest pain", "difficulty breathing", "chills", "rapid breathing"},
				BaseWeight:  25,
				Severity:    SeverityHigh,
				Description: "An infection that inflames the air sacs in one or both lungs.",
				Warning:     "Can become serious quickly, especially in older adults.",
			},
			{
				Name:        "Asthma",
				Symptoms:    []string{"wheezing", "shortness of breath", "chest tightness", "dry cough"},
				BaseWeight:  35,
				Severity:    SeverityModerate,
				Description: "A chronic condition in which the airways narrow and swell.",
			},
			{
				Name:        "Migraine",
				Symptoms:    []string{"headache", "sensitivity to light", "nausea", "visual disturbances"},
				BaseWeight:  40,
				Severity:    SeverityModerate,
				Description: "A headache disorder causing intense throbbing pain, often on one side of the head.",
			},
			{
				Name:        "Tension Headache",
				Symptoms:    []string{"headache", "neck stiffness", "pressure around head"},
				BaseWeight:  45,
				Severity:    SeverityLow,
				Description: "The most common type of headache, often linked to stress or posture.",
			},
			{
				Name:        "Gastroenteritis",
				Symptoms:    []string{"nausea", "vomiting", "diarrhea", "stomach cramps", "mild fever"},
				BaseWeight:  40,
				Severity:    SeverityModerate,
				Description: "Inflammation of the stomach and intestines, commonly called stomach flu.",
			},
			{
				Name:        "Food Poisoning",
				Symptoms:    []string{"nausea", "vomiting", "diarrhea", "stomach cramps", "weakness"},
				BaseWeight:  30,
				Severity:    SeverityModerate,
				Description: "Illness caused by eating contaminated food.",
			},
			{
				Name:        "Acid Reflux",
				Symptoms:    []string{"heartburn", "regurgitation", "bloating", "sour taste"},
				BaseWeight:  35,
				Severity:    SeverityLow,
				Description: "Stomach acid flowing back into the esophagus, causing a burning sensation.",
			},
			{
				Name:        "Urinary Tract Infection",
				Symptoms:    []string{"painful urination", "frequent urination", "cloudy urine", "pelvic pain"},
				BaseWeight:  35,
				Severity:    SeverityModerate,
				Description: "A bacterial infection of the urinary system.",
			},
			{
				Name:        "Iron-Deficiency Anemia",
				Symptoms:    []string{"fatigue", "weakness", "pale skin", "dizziness", "cold hands"},
				BaseWeight:  25,
				Severity:    SeverityModerate,
				Description: "A shortage of red blood cells caused by too little iron.",
			},
			{
				Name:        "Hypothyroidism",
				Symptoms:    []string{"fatigue", "weight gain", "cold intolerance", "dry skin", "hair loss"},
				BaseWeight:  20,
				Severity:    SeverityModerate,
				Description: "An underactive thyroid gland producing too little hormone.",
			},
			{
				Name:        "Hypertension",
				Symptoms:    []string{"headache", "dizziness", "blurred vision", "nosebleeds"},
				BaseWeight:  30,
				Severity:    SeverityModerate,
				Description: "Persistently elevated blood pressure. Often has no symptoms at all.",
			},
			{
				Name:        "Type 2 Diabetes",
				Symptoms:    []string{"increased thirst", "frequent urination", "blurred vision", "slow healing wounds", "fatigue"},
				BaseWeight:  25,
				Severity:    SeverityModerate,
				Description: "A chronic condition affecting how the body processes blood sugar.",
			},
			{
				Name:        "Arthritis",
				Symptoms:    []string{"joint pain", "stiffness", "swelling", "reduced range of motion", "fatigue"},
				BaseWeight:  40,
				Severity:    SeverityModerate,
				Description: "Inflammation of one or more joints, causing pain and stiffness that worsen with age.",
			},
			{
				Name:        "Osteoporosis",
				Symptoms:    []string{"back pain", "stooped posture", "loss of height"},
				BaseWeight:  20,
				Severity:    SeverityModerate,
				Description: "A condition in which bones become weak and brittle.",
			},
			{
				Name:        "Gout",
				Symptoms:    []string{"joint pain", "intense toe pain", "swelling", "redness"},
				BaseWeight:  25,
				Severity:    SeverityModerate,
				Description: "A form of arthritis caused by uric acid crystals in a joint.",
			},
			{
				Name:        "Kidney Stones",
				Symptoms:    []string{"severe back pain", "blood in urine", "painful urination", "nausea"},
				BaseWeight:  25,
				Severity:    SeverityHigh,
				Description: "Hard mineral deposits that form inside the kidneys.",
				Warning:     "Severe pain or fever alongside these symptoms needs prompt care.",
			},
			{
				Name:        "Ear Infection",
				Symptoms:    []string{"ear pain", "hearing difficulty", "ear drainage", "fever"},
				BaseWeight:  30,
				Severity:    SeverityLow,
				Description: "An infection of the middle ear, most common in children.",
			},
			{
				Name:        "Anxiety",
				Symptoms:    []string{"anxiety", "restlessness", "rapid heartbeat", "insomnia", "excessive worry"},
				BaseWeight:  35,
				Severity:    SeverityModerate,
				Description: "Persistent and excessive worry that interferes with daily activities.",
			},
			{
				Name:        "Depression",
				Symptoms:    []string{"depression", "persistent sadness", "loss of interest", "insomnia", "hopelessness"},
				BaseWeight:  30,
				Severity:    SeverityModerate,
				Description: "A mood disorder causing a persistent feeling of sadness and loss of interest.",
			},
			{
				Name:        "Dehydration",
				Symptoms:    []string{"thirst", "dry mouth", "dizziness", "dark urine", "weakness"},
				BaseWeight:  30,
				Severity:    SeverityLow,
				Description: "The body losing more fluid than it takes in.",
			},
			{
				Name:        "Chickenpox",
				Symptoms:    []string{"itchy rash", "blisters", "fever", "loss of appetite"},
				BaseWeight:  20,
				Severity:    SeverityModerate,
				Description: "A highly contagious viral infection causing an itchy, blister-like rash.",
			},

			// Emergency subset. Declaration order matters: the red-flag
			// detector picks the first intersecting entry.
			{
				Name:        "Heart Attack",
				Symptoms:    []string{"chest pain", "shortness of breath", "difficulty breathing", "pain radiating to arm", "cold sweat", "nausea"},
				BaseWeight:  20,
				Severity:    SeverityEmergency,
				IsEmergency: true,
				Description: "Blood flow to part of the heart muscle is blocked.",
				Warning:     "Call emergency services immediately. Do not drive yourself to the hospital.",
			},
			{
				Name:        "Stroke",
				Symptoms:    []string{"numbness on one side", "slurred speech", "sudden confusion", "facial drooping", "severe headache"},
				BaseWeight:  15,
				Severity:    SeverityEmergency,
				IsEmergency: true,
				Description: "Blood supply to part of the brain is interrupted.",
				Warning:     "Every minute counts. Call emergency services immediately.",
			},
			{
				Name:        "Anaphylaxis",
				Symptoms:    []string{"difficulty breathing", "swelling of face", "hives", "rapid pulse", "dizziness"},
				BaseWeight:  10,
				Severity:    SeverityEmergency,
				IsEmergency: true,
				Description: "A severe, potentially life-threatening allergic reaction.",
				Warning:     "Use an epinephrine auto-injector if available and call emergency services.",
			},
			{
				Name:        "Appendicitis",
				Symptoms:    []string{"severe abdominal pain", "nausea", "vomiting", "fever", "loss of appetite"},
				BaseWeight:  15,
				Severity:    SeverityEmergency,
				IsEmergency: true,
				Description: "Inflammation of the appendix causing pain that typically starts near the navel.",
				Warning:     "A ruptured appendix is life-threatening. Seek emergency care.",
			},
			{
				Name:        "Meningitis",
				Symptoms:    []string{"severe headache", "stiff neck", "high fever", "sensitivity to light", "confusion"},
				BaseWeight:  10,
				Severity:    SeverityEmergency,
				IsEmergency: true,
				Description: "Inflammation of the membranes surrounding the brain and spinal cord.",
				Warning:     "Bacterial meningitis progresses rapidly. Seek emergency care.",
			},
			{
				Name:        "Pulmonary Embolism",
				Symptoms:    []string{"difficulty breathing", "chest pain", "coughing up blood", "rapid heartbeat"},
				BaseWeight:  10,
				Severity:    SeverityEmergency,
				IsEmergency: true,
				Description: "A blood clot blocking an artery in the lungs.",
				Warning:     "Call emergency services immediately.",
			},
		},

		RedFlagSymptoms: []string{
			"chest pain",
			"difficulty breathing",
			"shortness of breath",
			"severe bleeding",
			"loss of consciousness",
			"sudden confusion",
			"slurred speech",
			"severe abdominal pain",
			"coughing up blood",
			"numbness on one side",
			"facial drooping",
			"swelling of face",
			"seizure",
		},

		UrgentSymptoms: []string{
			"high fever",
			"severe back pain",
			"stiff neck",
			"blood in urine",
		},

		SeniorConditions:    []string{"Arthritis", "Hypertension", "Type 2 Diabetes", "Osteoporosis"},
		PediatricConditions: []string{"Ear Infection", "Chickenpox"},
		FemaleConditions:    []string{"Urinary Tract Infection", "Migraine", "Hypothyroidism", "Iron-Deficiency Anemia"},
		MaleConditions:      []string{"Gout", "Kidney Stones"},

		RespiratoryKeywords: []string{
			"cough", "dry cough", "fever", "mild fever", "high fever",
			"shortness of breath", "difficulty breathing", "loss of taste",
			"loss of smell", "congestion", "sore throat",
		},
		AllergyKeywords: []string{
			"sneezing", "itchy eyes", "watery eyes", "runny nose", "hives", "itchy rash",
		},
		MentalHealthKeywords: []string{
			"anxiety", "depression", "insomnia", "hopelessness",
			"persistent sadness", "excessive worry", "restlessness",
		},
	}
}
