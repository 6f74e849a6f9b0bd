package theories

// SemanticActions documents the quadruple notation of the intermediate code.
// It is fixed reference text, not served by the backend.
const SemanticActions = `Semantic actions:

1. Declarations:
 DECLARE type value variable
 Example: DECLARE INT 0 x

2. Assignments:
 ASSIGN temp_value None variable
 Example: ASSIGN t1 None x

3. Operations:
 op arg1 arg2 result
 Example: PLUS t1 t2 t3

4. Control flow:
 IF_FALSE condition None label
 GOTO None None label
 LABEL None None label

5. Input/Output:
 PRINT temp_value
 READ variable`
