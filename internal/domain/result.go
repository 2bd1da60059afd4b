package domain

import "fmt"

// GeneralResult is the general result byte of a terminal response
type GeneralResult uint8

const (
	ResultSuccess                      GeneralResult = 0x00
	ResultSuccessPartialComprehension  GeneralResult = 0x01
	ResultSuccessMissingInformation    GeneralResult = 0x02
	ResultSuccessRefreshAdditionalRead GeneralResult = 0x03
	ResultSuccessIconNotDisplayed      GeneralResult = 0x04
	ResultSuccessModifiedByCallControl GeneralResult = 0x05
	ResultSuccessLimitedService        GeneralResult = 0x06
	ResultSuccessWithModification      GeneralResult = 0x07
	ResultSuccessRefreshNoNAA          GeneralResult = 0x08
	ResultSuccessToneNotPlayed         GeneralResult = 0x09
	ResultSessionTerminatedByUser      GeneralResult = 0x10
	ResultBackwardMoveByUser           GeneralResult = 0x11
	ResultNoResponseFromUser           GeneralResult = 0x12
	ResultHelpInfoRequired             GeneralResult = 0x13
	ResultUSSDOrSSTerminatedByUser     GeneralResult = 0x14
	ResultMEUnableToProcess            GeneralResult = 0x20
	ResultNetworkUnableToProcess       GeneralResult = 0x21
	ResultUserDidNotAccept             GeneralResult = 0x22
	ResultUserClearedDownCall          GeneralResult = 0x23
	ResultContradictionWithTimer       GeneralResult = 0x24
	ResultCallControlTemporary         GeneralResult = 0x25
	ResultLaunchBrowserError           GeneralResult = 0x26
	ResultMMSTemporary                 GeneralResult = 0x27
	ResultBeyondMECapabilities         GeneralResult = 0x30
	ResultCommandTypeNotUnderstood     GeneralResult = 0x31
	ResultCommandDataNotUnderstood     GeneralResult = 0x32
	ResultCommandNumberNotKnown        GeneralResult = 0x33
	ResultSSReturnError                GeneralResult = 0x34
	ResultSMSRPError                   GeneralResult = 0x35
	ResultRequiredValuesMissing        GeneralResult = 0x36
	ResultUSSDReturnError              GeneralResult = 0x37
	ResultMultipleCardCommandsError    GeneralResult = 0x38
	ResultCallControlPermanent         GeneralResult = 0x39
	ResultBIPError                     GeneralResult = 0x3A
	ResultAccessTechnologyUnable       GeneralResult = 0x3B
	ResultFramesError                  GeneralResult = 0x3C
	ResultMMSError                     GeneralResult = 0x3D
)

var generalResultNames = map[GeneralResult]string{
	ResultSuccess:                      "success",
	ResultSuccessPartialComprehension:  "success_partial_comprehension",
	ResultSuccessMissingInformation:    "success_missing_information",
	ResultSuccessRefreshAdditionalRead: "success_refresh_additional_efs_read",
	ResultSuccessIconNotDisplayed:      "success_icon_not_displayed",
	ResultSuccessModifiedByCallControl: "success_modified_by_call_control",
	ResultSuccessLimitedService:        "success_limited_service",
	ResultSuccessWithModification:      "success_with_modification",
	ResultSuccessRefreshNoNAA:          "success_refresh_no_naa",
	ResultSuccessToneNotPlayed:         "success_tone_not_played",
	ResultSessionTerminatedByUser:      "session_terminated_by_user",
	ResultBackwardMoveByUser:           "backward_move_by_user",
	ResultNoResponseFromUser:           "no_response_from_user",
	ResultHelpInfoRequired:             "help_info_required",
	ResultUSSDOrSSTerminatedByUser:     "ussd_or_ss_terminated_by_user",
	ResultMEUnableToProcess:            "me_unable_to_process",
	ResultNetworkUnableToProcess:       "network_unable_to_process",
	ResultUserDidNotAccept:             "user_did_not_accept",
	ResultUserClearedDownCall:          "user_cleared_down_call",
	ResultContradictionWithTimer:       "contradiction_with_timer",
	ResultCallControlTemporary:         "call_control_temporary",
	ResultLaunchBrowserError:           "launch_browser_error",
	ResultMMSTemporary:                 "mms_temporary",
	ResultBeyondMECapabilities:         "beyond_me_capabilities",
	ResultCommandTypeNotUnderstood:     "command_type_not_understood",
	ResultCommandDataNotUnderstood:     "command_data_not_understood",
	ResultCommandNumberNotKnown:        "command_number_not_known",
	ResultSSReturnError:                "ss_return_error",
	ResultSMSRPError:                   "sms_rp_error",
	ResultRequiredValuesMissing:        "required_values_missing",
	ResultUSSDReturnError:              "ussd_return_error",
	ResultMultipleCardCommandsError:    "multiple_card_commands_error",
	ResultCallControlPermanent:         "call_control_permanent",
	ResultBIPError:                     "bip_error",
	ResultAccessTechnologyUnable:       "access_technology_unable",
	ResultFramesError:                  "frames_error",
	ResultMMSError:                     "mms_error",
}

func (r GeneralResult) String() string {
	if name, ok := generalResultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02x)", uint8(r))
}

// ParseGeneralResult resolves a general result from its snake_case name
func ParseGeneralResult(name string) (GeneralResult, bool) {
	for r, n := range generalResultNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}

// IsSuccess reports whether the result belongs to the successful range
func (r GeneralResult) IsSuccess() bool {
	return r < ResultSessionTerminatedByUser
}

// ProblemDomain returns the axis of additional information the result requires
func (r GeneralResult) ProblemDomain() ProblemDomain {
	switch r {
	case ResultMEUnableToProcess:
		return ProblemME
	case ResultNetworkUnableToProcess, ResultSMSRPError:
		return ProblemNetwork
	case ResultSSReturnError:
		return ProblemSS
	case ResultUSSDReturnError:
		return ProblemUSSD
	case ResultCallControlPermanent:
		return ProblemCallControl
	case ResultLaunchBrowserError:
		return ProblemBrowser
	case ResultBIPError:
		return ProblemBIP
	default:
		return ProblemNone
	}
}

// Result pairs a general result with the additional information it requires.
// The zero value is a plain success.
type Result struct {
	general GeneralResult
	problem Problem
}

// NewResult validates that the problem belongs to the axis the general result requires.
// A nil problem is filled with the axis' "no specific cause".
func NewResult(general GeneralResult, problem Problem) (Result, error) {
	want := general.ProblemDomain()
	if problem == nil {
		return Result{general: general, problem: NoSpecificCause(want)}, nil
	}
	if want == ProblemNone || problem.Domain() != want {
		return Result{}, fmt.Errorf("%w: %s cannot carry a %s problem", ErrProblemMismatch, general, problem.Domain())
	}
	return Result{general: general, problem: problem}, nil
}

// ResultOf builds a result whose additional information, if any, is "no specific cause"
func ResultOf(general GeneralResult) Result {
	return Result{general: general, problem: NoSpecificCause(general.ProblemDomain())}
}

// MEUnable builds an ME currently unable to process command result
func MEUnable(problem MEProblem) Result {
	return Result{general: ResultMEUnableToProcess, problem: problem}
}

// General returns the general result byte
func (r Result) General() GeneralResult { return r.general }

// Problem returns the additional information, or nil
func (r Result) Problem() Problem { return r.problem }

func (r Result) String() string {
	if r.problem == nil {
		return r.general.String()
	}
	return fmt.Sprintf("%s/%s:0x%02x", r.general, r.problem.Domain(), r.problem.Code())
}
