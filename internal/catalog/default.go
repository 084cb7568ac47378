package catalog

// MaturityLabels are the short names for the five tiers, lowest first.
var MaturityLabels = [5]string{"No governance", "Minimal", "Progressive", "Good", "Leading"}

// Default returns the built-in maturity model, derived from the Cyber
// Governance Code of Practice. Always valid; New is not re-run on it.
func Default() *Catalog {
	c, err := New(defaultModel())
	if err != nil {
		// The built-in model is validated by tests; a failure here is a bug.
		panic(err)
	}
	return c
}

func levels(notes [5]string, followOn [5][]string) []Level {
	out := make([]Level, 5)
	for i := 0; i < 5; i++ {
		out[i] = Level{
			Level:         i,
			MaturityLevel: MaturityLabels[i],
			Notes:         notes[i],
			FollowOn:      followOn[i],
		}
	}
	return out
}

func defaultModel() *Catalog {
	return &Catalog{
		UI: UIStrings{
			NotesDefault:     "Select a maturity level to see notes and follow-on actions.",
			NoRatingsMessage: "No actions have been rated yet. Rate at least one action to see scores and recommendations.",
		},
		Sectors: map[string]string{
			"generic":   "General guidance applies. Consider sector regulators and insurers as additional sources of expectation.",
			"finance":   "Financial services boards should align maturity targets with FCA/PRA operational resilience expectations.",
			"health":    "Health sector boards should map actions to DSPT obligations and patient-safety impact.",
			"education": "Education boards should weigh safeguarding duties and reliance on shared IT services.",
			"charity":   "Charity trustees should balance maturity investment against limited resources and donor data duties.",
		},
		Domains: []Domain{
			{
				Code: "A",
				Name: "Risk Management",
				Actions: []Action{
					{
						Code:  "A1",
						Title: "Identify critical technology, services and data",
						Text:  "The board knows which digital assets the organisation cannot operate without.",
						Levels: levels(
							[5]string{
								"No inventory of critical systems or data exists.",
								"An informal list of key systems is held by IT only.",
								"A documented inventory exists and is reviewed occasionally.",
								"Critical assets are documented, owned, and reviewed at least annually by the board.",
								"Asset criticality drives investment, testing, and board reporting on a continuous basis.",
							},
							[5][]string{
								{"Commission an inventory of critical systems, services and data.", "Assign an executive owner for the inventory."},
								{"Bring the inventory to the board for review.", "Agree criteria for what counts as critical."},
								{"Set a review cadence and a named owner for each critical asset."},
								{"Link the inventory to scenario testing and continuity planning."},
								nil,
							},
						),
					},
					{
						Code:  "A2",
						Title: "Assess and prioritise cyber risk",
						Text:  "Cyber risk is assessed with the same discipline as financial or operational risk.",
						Levels: levels(
							[5]string{
								"Cyber risk is absent from the risk register.",
								"Cyber appears on the register but without owners or appetite.",
								"Cyber risks have owners and are reviewed on a fixed cycle.",
								"Risk appetite for cyber is defined and decisions reference it.",
								"Cyber risk appetite is quantified, tested, and revisited after material change.",
							},
							[5][]string{
								{"Add cyber risk to the corporate risk register."},
								{"Assign owners to each cyber risk.", "Draft a board risk-appetite statement for cyber."},
								{"Test decisions against the stated appetite."},
								{"Quantify top cyber risks in business terms."},
								nil,
							},
						),
					},
					{
						Code:  "A3",
						Title: "Manage supplier and third-party risk",
						Text:  "The organisation understands and manages the cyber risk it inherits from suppliers.",
						Levels: levels(
							[5]string{
								"Supplier cyber risk is not considered.",
								"Key suppliers are listed but not assessed.",
								"Critical suppliers are assessed at onboarding.",
								"Supplier assurance is ongoing and contract terms cover incident notification.",
								"Concentration risk and fourth parties are tracked; exit plans exist for critical suppliers.",
							},
							[5][]string{
								{"List suppliers whose failure would disrupt critical services."},
								{"Assess critical suppliers against a baseline standard."},
								{"Add incident-notification clauses at contract renewal."},
								{"Review concentration risk across the supplier base."},
								nil,
							},
						),
					},
				},
			},
			{
				Code: "B",
				Name: "Strategy",
				Actions: []Action{
					{
						Code:  "B1",
						Title: "Align cyber strategy with organisational strategy",
						Text:  "Cyber resilience is planned as part of what the organisation wants to achieve, not bolted on.",
						Levels: levels(
							[5]string{
								"No cyber strategy exists.",
								"A technical security plan exists but is not linked to business goals.",
								"A cyber strategy exists and references organisational objectives.",
								"The board approves the cyber strategy and monitors delivery.",
								"Cyber considerations shape strategic decisions such as new products and markets.",
							},
							[5][]string{
								{"Commission a cyber strategy covering the planning horizon."},
								{"Map security activities to organisational objectives."},
								{"Put strategy delivery on the board agenda."},
								{"Include cyber impact in strategic decision papers."},
								nil,
							},
						),
					},
					{
						Code:  "B2",
						Title: "Resource cyber security appropriately",
						Text:  "Investment in people, process and technology matches the stated risk appetite.",
						Levels: levels(
							[5]string{
								"No dedicated budget or accountable people for cyber security.",
								"Ad-hoc spend driven by incidents or audit findings.",
								"A recurring budget exists with an accountable senior owner.",
								"Investment is prioritised against assessed risk and reviewed annually.",
								"Resourcing is benchmarked, forward-looking, and adjusted with the threat picture.",
							},
							[5][]string{
								{"Identify a senior owner accountable for cyber resourcing."},
								{"Establish a recurring cyber budget line."},
								{"Tie the budget round to the risk assessment."},
								{"Benchmark spend and capability against peers."},
								nil,
							},
						),
					},
				},
			},
			{
				Code: "C",
				Name: "People",
				Actions: []Action{
					{
						Code:  "C1",
						Title: "Promote a positive cyber security culture",
						Text:  "Leadership behaviour makes secure choices the easy and expected ones.",
						Levels: levels(
							[5]string{
								"Security is seen as IT's problem; leadership is disengaged.",
								"Occasional security communications; no visible leadership involvement.",
								"Leaders communicate expectations and reporting concerns is safe.",
								"Culture is measured and near-misses are discussed openly at senior level.",
								"Security behaviour is part of performance conversations and celebrated publicly.",
							},
							[5][]string{
								{"Have a board member sponsor cyber culture visibly."},
								{"Run a no-blame route for reporting security concerns."},
								{"Measure culture through surveys or phishing-report rates."},
								{"Feed culture metrics into board reporting."},
								nil,
							},
						),
					},
					{
						Code:  "C2",
						Title: "Train the board and the workforce",
						Text:  "Directors and staff have the knowledge to fulfil their respective cyber duties.",
						Levels: levels(
							[5]string{
								"No cyber training for the board or staff.",
								"Annual generic awareness training for staff only.",
								"Role-relevant training exists; the board has had at least one briefing.",
								"The board trains regularly and training effectiveness is measured.",
								"Training is continuous, scenario-based, and informs succession planning.",
							},
							[5][]string{
								{"Schedule a cyber briefing for the full board."},
								{"Commission role-based training for high-risk roles."},
								{"Set a recurring board education slot."},
								{"Measure and report training effectiveness."},
								nil,
							},
						),
					},
				},
			},
			{
				Code: "D",
				Name: "Incident Planning and Response",
				Actions: []Action{
					{
						Code:  "D1",
						Title: "Maintain an incident response plan",
						Text:  "A current plan exists covering the incidents most likely to cause material harm.",
						Levels: levels(
							[5]string{
								"No incident response plan exists.",
								"A technical runbook exists; board roles are undefined.",
								"A plan covering board escalation and communications exists.",
								"The plan is current, covers priority scenarios, and names decision-makers.",
								"The plan integrates suppliers, regulators and media handling, and is revised after every exercise.",
							},
							[5][]string{
								{"Commission an incident response plan covering board escalation."},
								{"Define the board's role and decision rights during an incident."},
								{"Cover ransomware and data-loss scenarios explicitly."},
								{"Extend the plan to critical suppliers."},
								nil,
							},
						),
					},
					{
						Code:  "D2",
						Title: "Exercise the response regularly",
						Text:  "The plan is tested with the people who would actually run it, including the board.",
						Levels: levels(
							[5]string{
								"The plan has never been exercised.",
								"IT runs occasional technical tests without leadership.",
								"An annual exercise includes senior management.",
								"Board-level exercises run at least annually with lessons tracked to closure.",
								"Exercises vary in scenario and scope, include suppliers, and drive measurable improvement.",
							},
							[5][]string{
								{"Schedule a tabletop exercise for the executive team."},
								{"Include at least one board member in the next exercise."},
								{"Track exercise actions to closure."},
								{"Rotate scenarios and include a critical supplier."},
								nil,
							},
						),
					},
					{
						Code:  "D3",
						Title: "Meet reporting obligations",
						Text:  "The organisation knows whom it must tell, about what, and how quickly.",
						Levels: levels(
							[5]string{
								"Reporting obligations are unknown.",
								"Obligations are partially understood by one team.",
								"Obligations are documented with owners and deadlines.",
								"Reporting is rehearsed as part of incident exercises.",
								"Regulator and insurer relationships are maintained ahead of need.",
							},
							[5][]string{
								{"Document regulatory and contractual reporting obligations."},
								{"Assign ownership for each notification route."},
								{"Rehearse notifications in the next exercise."},
								{"Hold pre-incident briefings with key regulators or insurers."},
								nil,
							},
						),
					},
				},
			},
			{
				Code: "E",
				Name: "Assurance and Oversight",
				Actions: []Action{
					{
						Code:  "E1",
						Title: "Establish clear governance structures",
						Text:  "Ownership of cyber risk at board level is explicit and understood.",
						Levels: levels(
							[5]string{
								"No board-level ownership of cyber risk.",
								"Ownership is implicit or delegated without terms of reference.",
								"A named board member or committee owns cyber oversight.",
								"Terms of reference, escalation routes and management interfaces are defined.",
								"Governance effectiveness is reviewed and refined; responsibilities survive personnel change.",
							},
							[5][]string{
								{"Name a board owner for cyber risk oversight."},
								{"Write terms of reference for cyber oversight."},
								{"Define escalation routes from management to board."},
								{"Review governance effectiveness annually."},
								nil,
							},
						),
					},
					{
						Code:  "E2",
						Title: "Obtain meaningful reporting and metrics",
						Text:  "The board receives information it can challenge, not reassurance it must accept.",
						Levels: levels(
							[5]string{
								"The board receives no cyber reporting.",
								"Occasional technical reports that the board cannot interrogate.",
								"Regular reporting with agreed indicators in business language.",
								"Indicators track risk appetite and trends; the board challenges them.",
								"Reporting integrates assurance results, threat changes and investment outcomes.",
							},
							[5][]string{
								{"Agree a small set of board-level cyber indicators."},
								{"Move reporting to business-impact language."},
								{"Trend indicators against risk appetite."},
								{"Integrate assurance and threat inputs into the pack."},
								nil,
							},
						),
					},
					{
						Code:  "E3",
						Title: "Seek independent assurance",
						Text:  "Claims about cyber resilience are tested by someone without a stake in the answer.",
						Levels: levels(
							[5]string{
								"No independent assurance of cyber controls.",
								"Assurance happens only when a customer or insurer demands it.",
								"Periodic independent reviews are commissioned and findings tracked.",
								"An assurance plan covers critical systems on a rolling cycle.",
								"Assurance results are benchmarked and drive the improvement plan.",
							},
							[5][]string{
								{"Commission an independent review of critical controls."},
								{"Track review findings to closure at board level."},
								{"Build a rolling assurance plan for critical systems."},
								{"Benchmark assurance results year on year."},
								nil,
							},
						),
					},
				},
			},
		},
	}
}
