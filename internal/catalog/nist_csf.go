package catalog

var nistCSF = &Framework{
	ID:   "NIST_CSF",
	Name: "NIST Cybersecurity Framework",
	Categories: []Category{
		{
			Name:        "Identify",
			Description: "Develop an organizational understanding to manage cybersecurity risk to systems, people, assets, data, and capabilities.",
			Controls: []Control{
				{
					ID:             "ID.AM-1",
					Text:           "Physical devices and systems within the organization are inventoried.",
					Recommendation: "Establish and maintain an asset inventory covering all physical devices and systems, with an owner assigned to each entry and a defined review cadence.",
				},
				{
					ID:             "ID.AM-2",
					Text:           "Software platforms and applications within the organization are inventoried.",
					Recommendation: "Maintain a software inventory including version, owner, and business purpose; reconcile it against discovery scans at least quarterly.",
				},
				{
					ID:             "ID.RA-1",
					Text:           "Asset vulnerabilities are identified and documented.",
					Recommendation: "Define a vulnerability management process covering scan frequency, severity classification, and remediation timelines tied to risk.",
				},
				{
					ID:             "ID.GV-1",
					Text:           "Organizational cybersecurity policy is established and communicated.",
					Recommendation: "Publish a board-approved information security policy, communicate it to all personnel, and review it at least annually.",
				},
			},
		},
		{
			Name:        "Protect",
			Description: "Develop and implement appropriate safeguards to ensure delivery of critical services.",
			Controls: []Control{
				{
					ID:             "PR.AC-1",
					Text:           "Identities and credentials are issued, managed, verified, revoked, and audited for authorized devices, users and processes.",
					Recommendation: "Document the full credential lifecycle: provisioning tied to HR onboarding, periodic access reviews, and same-day revocation on termination.",
				},
				{
					ID:             "PR.AC-4",
					Text:           "Access permissions and authorizations are managed, incorporating the principles of least privilege and separation of duties.",
					Recommendation: "Define role-based access with least privilege as the default; require documented approval for privileged access and review grants quarterly.",
				},
				{
					ID:             "PR.DS-1",
					Text:           "Data-at-rest is protected.",
					Recommendation: "Require encryption at rest for all sensitive data stores, specifying approved algorithms and key management responsibilities.",
				},
				{
					ID:             "PR.DS-2",
					Text:           "Data-in-transit is protected.",
					Recommendation: "Mandate TLS 1.2 or higher for all data in transit, including internal service-to-service traffic carrying sensitive data.",
				},
				{
					ID:             "PR.AT-1",
					Text:           "All users are informed and trained.",
					Recommendation: "Establish mandatory security awareness training at hire and annually thereafter, with completion tracking and escalation for non-completion.",
				},
			},
		},
		{
			Name:        "Detect",
			Description: "Develop and implement appropriate activities to identify the occurrence of a cybersecurity event.",
			Controls: []Control{
				{
					ID:             "DE.AE-1",
					Text:           "A baseline of network operations and expected data flows for users and systems is established and managed.",
					Recommendation: "Document expected network flows and system behavior baselines so anomalies can be identified against a known-good reference.",
				},
				{
					ID:             "DE.CM-1",
					Text:           "The network is monitored to detect potential cybersecurity events.",
					Recommendation: "Deploy continuous network monitoring with alerting routed to a responsible team and documented triage procedures.",
				},
				{
					ID:             "DE.CM-4",
					Text:           "Malicious code is detected.",
					Recommendation: "Require anti-malware controls on all endpoints and servers with centrally managed signatures and alerting.",
				},
			},
		},
		{
			Name:        "Respond",
			Description: "Develop and implement appropriate activities to take action regarding a detected cybersecurity incident.",
			Controls: []Control{
				{
					ID:             "RS.RP-1",
					Text:           "Response plan is executed during or after an incident.",
					Recommendation: "Maintain a written incident response plan with defined roles, severity levels, and activation criteria; exercise it at least annually.",
				},
				{
					ID:             "RS.CO-2",
					Text:           "Incidents are reported consistent with established criteria.",
					Recommendation: "Define internal and external reporting thresholds, timelines, and responsible parties, including regulatory notification obligations.",
				},
				{
					ID:             "RS.MI-1",
					Text:           "Incidents are contained.",
					Recommendation: "Document containment strategies per incident type, including isolation procedures and decision authority for disruptive actions.",
				},
			},
		},
		{
			Name:        "Recover",
			Description: "Develop and implement appropriate activities to maintain plans for resilience and to restore any capabilities or services that were impaired due to a cybersecurity incident.",
			Controls: []Control{
				{
					ID:             "RC.RP-1",
					Text:           "Recovery plan is executed during or after a cybersecurity incident.",
					Recommendation: "Maintain a disaster recovery plan with defined RTO/RPO targets per system and test restoration procedures at least annually.",
				},
				{
					ID:             "RC.IM-1",
					Text:           "Recovery plans incorporate lessons learned.",
					Recommendation: "Require a post-incident review after every major incident and feed the findings into updated recovery documentation.",
				},
			},
		},
	},
}
