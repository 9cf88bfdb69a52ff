package sedml

import "fmt"

// TypeCode identifies the concrete kind of an Element
type TypeCode int

const (
	TypeUnknown TypeCode = iota
	TypeDocument
	TypeListOf
	TypeDataDescription
	TypeDataSource
	TypeSlice
	TypeModel
	TypeAddXML
	TypeChangeXML
	TypeRemoveXML
	TypeChangeAttribute
	TypeComputeChange
	TypeVariable
	TypeDependentVariable
	TypeAppliedDimension
	TypeParameter
	TypeUniformTimeCourse
	TypeOneStep
	TypeSteadyState
	TypeAnalysis
	TypeAlgorithm
	TypeAlgorithmParameter
	TypeTask
	TypeRepeatedTask
	TypeSubTask
	TypeParameterEstimationTask
	TypeUniformRange
	TypeVectorRange
	TypeFunctionalRange
	TypeDataRange
	TypeSetValue
	TypeDataGenerator
	TypeReport
	TypeDataSet
	TypePlot2D
	TypePlot3D
	TypeFigure
	TypeSubPlot
	TypeCurve
	TypeShadedArea
	TypeSurface
	TypeAxis
	TypeStyle
	TypeLine
	TypeMarker
	TypeFill
	TypeAdjustableParameter
	TypeBounds
	TypeExperimentReference
	TypeFitExperiment
	TypeFitMapping
	TypeLeastSquareObjectiveFunction
)

var typeCodeText = [...]string{
	TypeUnknown:                      "Unknown",
	TypeDocument:                     "Document",
	TypeListOf:                       "ListOf",
	TypeDataDescription:              "DataDescription",
	TypeDataSource:                   "DataSource",
	TypeSlice:                        "Slice",
	TypeModel:                        "Model",
	TypeAddXML:                       "AddXML",
	TypeChangeXML:                    "ChangeXML",
	TypeRemoveXML:                    "RemoveXML",
	TypeChangeAttribute:              "ChangeAttribute",
	TypeComputeChange:                "ComputeChange",
	TypeVariable:                     "Variable",
	TypeDependentVariable:            "DependentVariable",
	TypeAppliedDimension:             "AppliedDimension",
	TypeParameter:                    "Parameter",
	TypeUniformTimeCourse:            "UniformTimeCourse",
	TypeOneStep:                      "OneStep",
	TypeSteadyState:                  "SteadyState",
	TypeAnalysis:                     "Analysis",
	TypeAlgorithm:                    "Algorithm",
	TypeAlgorithmParameter:           "AlgorithmParameter",
	TypeTask:                         "Task",
	TypeRepeatedTask:                 "RepeatedTask",
	TypeSubTask:                      "SubTask",
	TypeParameterEstimationTask:      "ParameterEstimationTask",
	TypeUniformRange:                 "UniformRange",
	TypeVectorRange:                  "VectorRange",
	TypeFunctionalRange:              "FunctionalRange",
	TypeDataRange:                    "DataRange",
	TypeSetValue:                     "SetValue",
	TypeDataGenerator:                "DataGenerator",
	TypeReport:                       "Report",
	TypeDataSet:                      "DataSet",
	TypePlot2D:                       "Plot2D",
	TypePlot3D:                       "Plot3D",
	TypeFigure:                       "Figure",
	TypeSubPlot:                      "SubPlot",
	TypeCurve:                        "Curve",
	TypeShadedArea:                   "ShadedArea",
	TypeSurface:                      "Surface",
	TypeAxis:                         "Axis",
	TypeStyle:                        "Style",
	TypeLine:                         "Line",
	TypeMarker:                       "Marker",
	TypeFill:                         "Fill",
	TypeAdjustableParameter:          "AdjustableParameter",
	TypeBounds:                       "Bounds",
	TypeExperimentReference:          "ExperimentReference",
	TypeFitExperiment:                "FitExperiment",
	TypeFitMapping:                   "FitMapping",
	TypeLeastSquareObjectiveFunction: "LeastSquareObjectiveFunction",
}

func (t TypeCode) String() string {
	if t >= 0 && int(t) < len(typeCodeText) {
		return typeCodeText[t]
	}
	return fmt.Sprintf("TypeCode(%d)", int(t))
}
