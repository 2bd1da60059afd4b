package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"satd/internal/domain"
	"satd/internal/logging"
)

// responseDescriptor is the per-kind glue of the generic terminal response builder
type responseDescriptor struct {
	// problemAxes are the additional information axes an execution result may use
	// besides the ME axis, which every kind accepts
	problemAxes []domain.ProblemDomain
	// declineResult answers a declined prompt; zero means backward move
	declineResult domain.GeneralResult
	// timeoutResult overrides the no response result
	timeoutResult func(cmd domain.ProactiveCommand) domain.GeneralResult

	acceptData    func(s *ProactiveService, cmd domain.ProactiveCommand, c domain.Confirmation) (domain.ResponseData, error)
	executionData func(s *ProactiveService, cmd domain.ProactiveCommand, r domain.ExecutionResult) (domain.ResponseData, error)
	// onSuccess runs once a successful response was built
	onSuccess func(s *ProactiveService, cmd domain.ProactiveCommand)
}

func (d responseDescriptor) allows(axis domain.ProblemDomain) bool {
	return axis == domain.ProblemME || slices.Contains(d.problemAxes, axis)
}

var bipAxes = []domain.ProblemDomain{domain.ProblemBIP}

var descriptors = map[domain.CommandKind]responseDescriptor{
	domain.KindDisplayText: {
		timeoutResult: func(cmd domain.ProactiveCommand) domain.GeneralResult {
			// The UI's own timeout is the expected clear event
			if c, ok := cmd.(domain.DisplayText); ok && c.WaitForUserClear {
				return domain.ResultSuccess
			}
			return domain.ResultNoResponseFromUser
		},
	},
	domain.KindGetInkey: {
		acceptData:    inkeyAcceptData,
		executionData: inkeyExecutionData,
	},
	domain.KindGetInput: {
		acceptData:    inputAcceptData,
		executionData: inputExecutionData,
	},
	domain.KindSelectItem: {
		acceptData: func(_ *ProactiveService, _ domain.ProactiveCommand, c domain.Confirmation) (domain.ResponseData, error) {
			return domain.ItemResponse{ItemID: c.ItemID}, nil
		},
	},
	domain.KindSetupMenu: {
		onSuccess: func(s *ProactiveService, cmd domain.ProactiveCommand) {
			if c, ok := cmd.(domain.SetupMenu); ok {
				s.menu = append([]domain.Item(nil), c.Items...)
			}
		},
	},
	domain.KindSetupCall: {
		problemAxes:   []domain.ProblemDomain{domain.ProblemNetwork, domain.ProblemCallControl},
		declineResult: domain.ResultUserDidNotAccept,
	},
	domain.KindSetupEventList: {
		onSuccess: func(s *ProactiveService, cmd domain.ProactiveCommand) {
			if c, ok := cmd.(domain.SetupEventList); ok {
				s.installEvents(c.Events)
			}
		},
	},
	domain.KindSendSMS: {
		problemAxes: []domain.ProblemDomain{domain.ProblemNetwork, domain.ProblemCallControl},
	},
	domain.KindSendSS: {
		problemAxes: []domain.ProblemDomain{domain.ProblemNetwork, domain.ProblemSS, domain.ProblemCallControl},
	},
	domain.KindSendUSSD: {
		problemAxes:   []domain.ProblemDomain{domain.ProblemNetwork, domain.ProblemUSSD, domain.ProblemCallControl},
		executionData: ussdExecutionData,
	},
	domain.KindSendDTMF: {
		problemAxes: []domain.ProblemDomain{domain.ProblemNetwork},
	},
	domain.KindLaunchBrowser: {
		problemAxes:   []domain.ProblemDomain{domain.ProblemBrowser},
		declineResult: domain.ResultUserDidNotAccept,
	},
	domain.KindProvideLocalInfo: {
		executionData: func(_ *ProactiveService, _ domain.ProactiveCommand, r domain.ExecutionResult) (domain.ResponseData, error) {
			if r.LocalInfo == nil {
				return nil, errors.New("local information missing from execution result")
			}
			return domain.LocalInfoResponse{Info: *r.LocalInfo}, nil
		},
	},
	domain.KindOpenChannel: {
		problemAxes:   []domain.ProblemDomain{domain.ProblemNetwork, domain.ProblemBIP},
		declineResult: domain.ResultUserDidNotAccept,
		executionData: func(_ *ProactiveService, cmd domain.ProactiveCommand, r domain.ExecutionResult) (domain.ResponseData, error) {
			c := cmd.(domain.OpenChannel)
			size := r.BufferSize
			if size == 0 {
				size = c.BufferSize
			}
			return domain.ChannelResponse{Bearer: c.Bearer, BufferSize: size, Status: r.Channel}, nil
		},
	},
	domain.KindCloseChannel: {problemAxes: bipAxes},
	domain.KindReceiveData: {
		problemAxes: bipAxes,
		executionData: func(_ *ProactiveService, _ domain.ProactiveCommand, r domain.ExecutionResult) (domain.ResponseData, error) {
			return domain.ChannelDataResponse{Data: r.ChannelData, Remaining: r.ChannelDataLength}, nil
		},
	},
	domain.KindSendData: {
		problemAxes: bipAxes,
		executionData: func(_ *ProactiveService, _ domain.ProactiveCommand, r domain.ExecutionResult) (domain.ResponseData, error) {
			return domain.ChannelLengthResponse{Available: r.ChannelDataLength}, nil
		},
	},
	domain.KindGetChannelStatus: {
		problemAxes: bipAxes,
		executionData: func(_ *ProactiveService, _ domain.ProactiveCommand, r domain.ExecutionResult) (domain.ResponseData, error) {
			return domain.ChannelStatusResponse{Statuses: r.ChannelStatuses}, nil
		},
	},
}

// finalize builds the terminal response for a removed entry. It never fails:
// anything it cannot express degrades to ME currently unable to process command.
func (s *ProactiveService) finalize(entry domain.QueueEntry, outcome domain.Outcome) domain.TerminalResponse {
	cmd := entry.Command
	header := cmd.Header()
	desc := descriptors[entry.Kind]

	var (
		result domain.Result
		data   domain.ResponseData
		err    error
	)

	switch o := outcome.(type) {
	case domain.ExecutionResult:
		result = executionResult(entry, desc, o)
		if result.General().IsSuccess() && desc.executionData != nil {
			data, err = desc.executionData(s, cmd, o)
		}
	case domain.Confirmation:
		result = domain.ResultOf(confirmationResult(desc, cmd, o.Kind))
		if o.Kind == domain.ConfirmAccept && desc.acceptData != nil {
			data, err = desc.acceptData(s, cmd, o)
		}
	case domain.DisplayFailure:
		result = domain.MEUnable(domain.MENoSpecificCause)
	default:
		logging.Logger.Warn("Unknown outcome", "command_id", entry.ID, "outcome", fmt.Sprintf("%T", outcome))
		result = domain.MEUnable(domain.MENoSpecificCause)
	}

	if err != nil {
		logging.Logger.Warn("Failed to build response data",
			"command_id", entry.ID,
			"kind", entry.Kind,
			"error", err)
		result = domain.MEUnable(domain.MENoSpecificCause)
		data = nil
	}

	// Icons are never rendered here; colour ones must be reported as not displayed
	if result.General() == domain.ResultSuccess && hasColourIcon(cmd) {
		result = domain.ResultOf(domain.ResultSuccessIconNotDisplayed)
	}

	if result.General().IsSuccess() && desc.onSuccess != nil {
		desc.onSuccess(s, cmd)
	}

	return domain.TerminalResponse{
		Data:    data,
		Details: header.Details,
		Devices: header.Devices.Swap(),
		Result:  result,
	}
}

func executionResult(entry domain.QueueEntry, desc responseDescriptor, r domain.ExecutionResult) domain.Result {
	axis := r.General.ProblemDomain()
	if axis == domain.ProblemNone {
		if r.Problem != nil {
			logging.Logger.Warn("Ignoring problem for result without additional information",
				"command_id", entry.ID,
				"result", r.General)
		}
		return domain.ResultOf(r.General)
	}

	if !desc.allows(axis) {
		logging.Logger.Warn("Result not allowed for command kind",
			"command_id", entry.ID,
			"kind", entry.Kind,
			"result", r.General)
		return domain.MEUnable(domain.MENoSpecificCause)
	}

	result, err := domain.NewResult(r.General, r.Problem)
	if err != nil {
		logging.Logger.Warn("Invalid problem for result",
			"command_id", entry.ID,
			"kind", entry.Kind,
			"error", err)
		return domain.MEUnable(domain.MENoSpecificCause)
	}
	return result
}

func confirmationResult(desc responseDescriptor, cmd domain.ProactiveCommand, kind domain.ConfirmationKind) domain.GeneralResult {
	switch kind {
	case domain.ConfirmAccept:
		return domain.ResultSuccess
	case domain.ConfirmHelp:
		return domain.ResultHelpInfoRequired
	case domain.ConfirmDecline:
		if desc.declineResult != 0 {
			return desc.declineResult
		}
		return domain.ResultBackwardMoveByUser
	case domain.ConfirmTimeout:
		if desc.timeoutResult != nil {
			return desc.timeoutResult(cmd)
		}
		return domain.ResultNoResponseFromUser
	case domain.ConfirmEndSession:
		return domain.ResultSessionTerminatedByUser
	default:
		return domain.ResultMEUnableToProcess
	}
}

func hasColourIcon(cmd domain.ProactiveCommand) bool {
	for _, icon := range cmd.Icons() {
		if icon.IsColour() {
			return true
		}
	}
	return false
}

// encodeText converts application text back into the alphabet the card expects
func (s *ProactiveService) encodeText(alphabet domain.Alphabet, text string) (domain.TextString, error) {
	data, err := s.codec.Encode(alphabet, text)
	if err != nil {
		return domain.TextString{}, fmt.Errorf("failed to encode response text: %w", err)
	}
	return domain.TextString{Alphabet: alphabet, Data: data}, nil
}

func inkeyAlphabet(c domain.GetInkey) domain.Alphabet {
	if c.Response == domain.InkeyUCS2 {
		return domain.AlphabetUCS2
	}
	return domain.Alphabet8BitData
}

func inkeyText(s *ProactiveService, c domain.GetInkey, text string, affirmative bool) (domain.ResponseData, error) {
	if c.Response == domain.InkeyYesNo {
		b := byte(0x00)
		if affirmative {
			b = 0x01
		}
		return domain.TextResponse{Text: domain.TextString{Alphabet: domain.Alphabet8BitData, Data: []byte{b}}}, nil
	}

	t, err := s.encodeText(inkeyAlphabet(c), text)
	if err != nil {
		return nil, err
	}
	return domain.TextResponse{Text: t}, nil
}

func inkeyAcceptData(s *ProactiveService, cmd domain.ProactiveCommand, c domain.Confirmation) (domain.ResponseData, error) {
	return inkeyText(s, cmd.(domain.GetInkey), c.Text, c.Affirmative)
}

func inkeyExecutionData(s *ProactiveService, cmd domain.ProactiveCommand, r domain.ExecutionResult) (domain.ResponseData, error) {
	return inkeyText(s, cmd.(domain.GetInkey), r.Text, r.Affirmative)
}

func inputText(s *ProactiveService, c domain.GetInput, text string) (domain.ResponseData, error) {
	t, err := s.encodeText(c.ResponseAlphabet(), text)
	if err != nil {
		return nil, err
	}
	return domain.TextResponse{Text: t}, nil
}

func inputAcceptData(s *ProactiveService, cmd domain.ProactiveCommand, c domain.Confirmation) (domain.ResponseData, error) {
	return inputText(s, cmd.(domain.GetInput), c.Text)
}

func inputExecutionData(s *ProactiveService, cmd domain.ProactiveCommand, r domain.ExecutionResult) (domain.ResponseData, error) {
	return inputText(s, cmd.(domain.GetInput), r.Text)
}

func ussdExecutionData(s *ProactiveService, _ domain.ProactiveCommand, r domain.ExecutionResult) (domain.ResponseData, error) {
	alphabet := r.TextAlphabet
	if alphabet == domain.AlphabetUnspecified {
		alphabet = domain.Alphabet8BitData
	}
	t, err := s.encodeText(alphabet, r.Text)
	if err != nil {
		return nil, err
	}
	return domain.TextResponse{Text: t}, nil
}

// HandleExecutionResult finalizes a command the application executed
func (s *ProactiveService) HandleExecutionResult(ctx context.Context, id int, result domain.ExecutionResult) (*domain.TerminalResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logging.Logger.Debug("Execution result received", "command_id", id, "result", result.General)
	return s.finalizeAndSend(ctx, id, result)
}

// HandleDisplayStatus records whether the application managed to present a command.
// A failure finalizes the command; a success only checks the id is still outstanding.
func (s *ProactiveService) HandleDisplayStatus(ctx context.Context, id int, displayed bool) (*domain.TerminalResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if displayed {
		if _, err := s.queue.Peek(id); err != nil {
			return nil, fmt.Errorf("failed to load command: %w", err)
		}
		logging.Logger.Debug("Command displayed", "command_id", id)
		return nil, nil
	}

	logging.Logger.Warn("Application failed to display command", "command_id", id)
	return s.finalizeAndSend(ctx, id, domain.DisplayFailure{})
}
